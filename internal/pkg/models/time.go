package models

import (
	"time"
)

// Milliseconds converts a millisecond count from config into a duration
func Milliseconds(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
