package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Field type alias for better abstraction
type Field = zap.Field

// Field construction functions - abstracts zap implementation
// so callers use logger.String(...) instead of importing zap directly

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// RequestID tags an entry with the HTTP request that opened it
func RequestID(id string) Field {
	return zap.String("request_id", id)
}

// RideID tags an entry with the ride it belongs to
func RideID(id string) Field {
	return zap.String("ride_id", id)
}

// SessionID tags an entry with the page connection it belongs to
func SessionID(id string) Field {
	return zap.String("session_id", id)
}

// RideState logs a ride state under key. Anything with a String method
// works, so models does not need to import the logger.
func RideState(key string, state fmt.Stringer) Field {
	return zap.Stringer(key, state)
}

// Cell logs a geohash cell, never the raw coordinate it was encoded from
func Cell(key, geohash string) Field {
	return zap.String(key, geohash)
}
