package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
)

// PanicRecoveryWithZapMiddleware recovers handler panics, logs them with a
// stack trace and answers 500 instead of dropping the connection
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", r)
				}

				if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
					txn.NoticeError(panicErr)
				}

				zapLogger.Error("Panic recovered",
					logger.Err(panicErr),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.RequestID(c.Response().Header().Get(echo.HeaderXRequestID)),
					logger.String("stack", string(debug.Stack())),
				)

				err = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}()

			return next(c)
		}
	}
}
