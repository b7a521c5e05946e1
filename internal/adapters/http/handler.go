package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Siddhartha1011/AI-Astrologer/internal/app"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "Internal server error"
)

// Status is the configuration state reported by GET /health.
type Status struct {
	GroqConfigured   bool
	TavilyConfigured bool
}

type Handler struct {
	svc    *app.AstrologerService
	status Status
	logger *zap.Logger
}

func NewHandler(svc *app.AstrologerService, status Status, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		status: status,
		logger: logger.With(zap.String("component", "http")),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/generate-reading", h.GenerateReading)
	e.POST("/ask-question", h.AskQuestion)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:           "healthy",
		GroqConfigured:   h.status.GroqConfigured,
		TavilyConfigured: h.status.TavilyConfigured,
	})
}

func (h *Handler) GenerateReading(c echo.Context) error {
	var req BirthRequest
	msg, err := h.decode(c, &req)
	if err != nil {
		return mapError(c, h.logger, err)
	}
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}

	h.logger.Info("generating reading",
		zap.String("request_id", requestID(c)),
		zap.String("name", req.Name),
	)

	resp, err := h.svc.GenerateReading(c.Request().Context(), req.toDomain())
	if err != nil {
		return mapError(c, h.logger, err)
	}

	out := ReadingResponse{Success: true, Reading: resp.Reading}
	if resp.ZodiacSign != "" {
		sign := string(resp.ZodiacSign)
		out.ZodiacSign = &sign
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) AskQuestion(c echo.Context) error {
	var req QuestionRequest
	msg, err := h.decode(c, &req)
	if err != nil {
		return mapError(c, h.logger, err)
	}
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}

	h.logger.Info("answering question",
		zap.String("request_id", requestID(c)),
		zap.String("name", req.Name),
		zap.String("question", req.Question),
	)

	resp, err := h.svc.AnswerQuestion(c.Request().Context(), req.toDomain(), req.Question)
	if err != nil {
		return mapError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, AnswerResponse{Success: true, Answer: resp.Answer})
}

// decode binds the body into req and validates it. A non-empty msg is the
// client-facing reason for a 400.
func (h *Handler) decode(c echo.Context, req any) (msg string, err error) {
	if err := c.Bind(req); err != nil {
		h.logger.Debug("bind failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return msgInvalidBody, nil
	}
	if err := c.Validate(req); err != nil {
		if msg, ok := validationMessage(err); ok {
			return msg, nil
		}
		return "", fmt.Errorf("validate request: %w", err)
	}
	return "", nil
}

func mapError(c echo.Context, logger *zap.Logger, err error) error {
	logger.Error("internal error", zap.String("request_id", requestID(c)), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
}

// ErrorHandler renders errors that escape handlers (panics, unknown routes)
// in the same envelope as handler errors. Details are logged, never returned.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := msgInternalError
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}
		if code >= http.StatusInternalServerError {
			logger.Error("unhandled error", zap.String("request_id", requestID(c)), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Error: msg})
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
