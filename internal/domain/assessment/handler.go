package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cvrisk/bridge/internal/platform/auth"
	"github.com/cvrisk/bridge/internal/platform/upstream"
)

const (
	statusSuccess          = "success"
	statusError            = "error"
	statusNotAuthenticated = "not authenticated"

	msgNotAuthenticated = "Please provide a valid hashid to access this service."
	msgTransientLoad    = "We are experiencing huge load at the movement. Please try again later."
	msgInvalidToken     = "Report access token is missing, invalid, or expired."
	msgRecordNotFound   = "No record exists for the given record_id."
	msgUnexpected       = "Unable to process the request. Please verify the submitted data and try again."
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/aicvd", h.Assess)
	g.POST("/aicvd-report", h.GetReport)
}

func (h *Handler) Assess(c echo.Context) error {
	var intake IntakeRecord
	if err := c.Bind(&intake); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status": statusError,
			"msg":    "invalid request body",
		})
	}

	outcome, err := h.svc.Assess(c.Request().Context(), intake)
	if err != nil {
		return h.writeAssessError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   statusSuccess,
		"response": outcome.Summary,
	})
}

func (h *Handler) writeAssessError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		// Deliberately a 200 with a semantic failure body, matching the
		// backward-compatible response shape downstream consumers expect.
		return c.JSON(http.StatusOK, echo.Map{
			"status": statusNotAuthenticated,
			"msg":    msgNotAuthenticated,
		})
	case errors.Is(err, upstream.ErrTransientUpstream):
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": statusError,
			"msg":    msgTransientLoad,
		})
	}

	var rejection *upstream.SemanticRejectionError
	if errors.As(err, &rejection) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":             statusError,
			"api_error_response": relayBody(rejection.Body),
		})
	}

	rid, _ := c.Get("request_id").(string)
	h.logger.Error().Err(err).Str("request_id", rid).Msg("assessment failed")
	return c.JSON(http.StatusBadRequest, echo.Map{
		"status": statusError,
		"msg":    msgUnexpected,
	})
}

func (h *Handler) GetReport(c echo.Context) error {
	credential := bearerToken(c.Request())

	var req struct {
		RecordID string `json:"record_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status": statusError,
			"msg":    "invalid request body",
		})
	}

	report, err := h.svc.GetReport(c.Request().Context(), credential, req.RecordID)
	switch {
	case errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, ErrCredentialMismatch):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"status": statusNotAuthenticated,
			"msg":    msgInvalidToken,
		})
	case errors.Is(err, ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"status": statusError,
			"msg":    msgRecordNotFound,
		})
	case err != nil:
		rid, _ := c.Get("request_id").(string)
		h.logger.Error().Err(err).Str("request_id", rid).Msg("report retrieval failed")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status": statusError,
			"msg":    msgUnexpected,
		})
	}

	return c.JSON(http.StatusOK, report)
}

// relayBody preserves a JSON upstream error verbatim; anything else is
// relayed as a plain string.
func relayBody(body []byte) interface{} {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
