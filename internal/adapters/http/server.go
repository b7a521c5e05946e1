package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewServer wires the echo instance: middleware, validator, error handler
// and routes. Cross-origin requests are allowed from any origin.
func NewServer(h *Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	}))
	e.Use(middleware.CORS())

	h.Register(e)
	return e
}
