package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mj1618/eve-ui-reader/internal/log"
)

// requestLogger logs one line per request at debug level. Errors are
// rendered here so the logged status is the one sent.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			log.Debug("request",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"bytes", c.Response().Size,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"elapsed", time.Since(start),
			)
			return nil
		}
	}
}
