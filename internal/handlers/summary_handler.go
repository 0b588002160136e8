package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"receiptai/internal/backend"
	"receiptai/internal/dto"
	"receiptai/internal/errors"
	"receiptai/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles tax summary generation and CSV export.
type SummaryHandler struct {
	summaries services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaries services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// Generate fetches a fresh tax summary for the requested year. Free
// tier sessions get a response with no invoice section at all.
func (h *SummaryHandler) Generate(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	var req dto.SummaryRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	summary, err := h.summaries.Generate(c.Request().Context(), session, req.Year)
	if err != nil {
		return sendSummaryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSummaryResponse(summary),
	})
}

// ExportCSV streams the summary as a CSV download named
// tax-summary-<year>.csv.
func (h *SummaryHandler) ExportCSV(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	year := getIntParam(c, "year", 0)
	if year < minTaxYear || year > time.Now().Year() {
		return SendError(c, errors.ValidationInvalidYear)
	}

	filename, data, err := h.summaries.ExportCSV(c.Request().Context(), session, year)
	if err != nil {
		return sendSummaryError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

func sendSummaryError(c echo.Context, err error) error {
	if stderrors.Is(err, backend.ErrMalformedResponse) {
		return SendError(c, errors.BackendMalformedPayload)
	}

	var apiErr *backend.APIError
	if stderrors.As(err, &apiErr) {
		return SendError(c, errors.SummaryRejected, errors.WithMessage(apiErr.Message))
	}

	return SendError(c, errors.BackendUnreachable)
}
