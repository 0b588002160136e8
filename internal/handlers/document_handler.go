package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"receiptai/internal/backend"
	"receiptai/internal/dto"
	"receiptai/internal/errors"
	"receiptai/internal/models"
	"receiptai/internal/services"

	"github.com/labstack/echo/v4"
)

// DocumentHandler handles document upload and the processed-documents
// feed.
type DocumentHandler struct {
	uploads services.UploadServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(uploads services.UploadServiceInterface) *DocumentHandler {
	return &DocumentHandler{uploads: uploads}
}

// Upload accepts a document as either multipart form data (file +
// type fields, the browser path) or a JSON body with a pre-encoded
// image. The backend's verdict is returned as-is: a structured
// rejection is a 422 carrying the backend's own message.
func (h *DocumentHandler) Upload(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	var result *models.UploadResult
	if isMultipart(c) {
		result, err = h.uploadMultipart(c, session)
	} else {
		result, err = h.uploadJSON(c, session)
	}
	if err != nil {
		return err
	}
	if result == nil {
		// A validation failure already produced the response.
		return nil
	}

	if !result.Succeeded() {
		return SendError(c, errors.UploadRejected, errors.WithMessage(result.FailureMessage()))
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewDocumentCard(result),
		Message: "Document processed",
	})
}

// Recent returns the user's successful uploads from this process's
// lifetime, newest first.
func (h *DocumentHandler) Recent(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	results := h.uploads.RecentResults(session.UserID)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewDocumentCards(results),
		Meta: map[string]interface{}{
			"count":     len(results),
			"in_flight": h.uploads.InFlight(session.UserID),
		},
	})
}

func (h *DocumentHandler) uploadMultipart(c echo.Context, session *models.Session) (*models.UploadResult, error) {
	docType, parseErr := models.ParseDocumentType(c.FormValue("type"))
	if parseErr != nil {
		return nil, SendError(c, errors.ValidationInvalidType)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, SendError(c, errors.ValidationMissingFile)
	}
	if fileHeader.Size == 0 {
		return nil, SendError(c, errors.ValidationEmptyFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, SendError(c, errors.UploadReadFailed)
	}
	defer file.Close()

	result, err := h.uploads.Upload(c.Request().Context(), session, file, docType, fileHeader.Filename)
	if err != nil {
		return nil, sendUploadError(c, err)
	}
	return result, nil
}

func (h *DocumentHandler) uploadJSON(c echo.Context, session *models.Session) (*models.UploadResult, error) {
	var req dto.UploadJSONRequest

	if err := c.Bind(&req); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return nil, err
	}

	// Validated by the document_type tag above.
	docType, _ := models.ParseDocumentType(req.Type)

	result, err := h.uploads.UploadEncoded(c.Request().Context(), session, req.Image, docType, req.Filename)
	if err != nil {
		return nil, sendUploadError(c, err)
	}
	return result, nil
}

func sendUploadError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrEmptyFile) {
		return SendError(c, errors.ValidationEmptyFile)
	}
	if stderrors.Is(err, backend.ErrMalformedResponse) {
		return SendError(c, errors.BackendMalformedPayload)
	}

	var apiErr *backend.APIError
	if stderrors.As(err, &apiErr) {
		return SendError(c, errors.UploadRejected, errors.WithMessage(apiErr.Message))
	}

	return SendError(c, errors.BackendUnreachable)
}

func isMultipart(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, echo.MIMEMultipartForm)
}
