package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"receiptai/internal/backend"
	"receiptai/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// maxFeedLength bounds the per-user result feed. The feed only backs
// the "processed this session" list, so old entries can fall off.
const maxFeedLength = 100

var ErrEmptyFile = errors.New("uploaded file is empty")

var documentsUploaded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "documents_uploaded_total",
		Help: "Total number of document uploads by type and outcome",
	},
	[]string{"type", "outcome"},
)

type uploadService struct {
	backend DocumentBackendInterface

	mu       sync.RWMutex
	feeds    map[string][]models.UploadResult
	inFlight map[string]int
}

func NewUploadService(backendClient DocumentBackendInterface) UploadServiceInterface {
	return &uploadService{
		backend:  backendClient,
		feeds:    make(map[string][]models.UploadResult),
		inFlight: make(map[string]int),
	}
}

func (s *uploadService) Upload(ctx context.Context, session *models.Session, file io.Reader, docType models.DocumentType, filename string) (*models.UploadResult, error) {
	encoded, err := backend.EncodeFile(file)
	if err != nil {
		return nil, err
	}
	return s.UploadEncoded(ctx, session, encoded, docType, filename)
}

func (s *uploadService) UploadEncoded(ctx context.Context, session *models.Session, encoded string, docType models.DocumentType, filename string) (*models.UploadResult, error) {
	encoded = backend.StripDataURL(encoded)
	if encoded == "" {
		return nil, ErrEmptyFile
	}

	s.markInFlight(session.UserID, 1)
	defer s.markInFlight(session.UserID, -1)

	result, err := s.backend.UploadDocument(ctx, backend.UploadRequest{
		Image:    encoded,
		Type:     string(docType),
		Filename: filename,
	}, session.AccessToken)
	if err != nil {
		documentsUploaded.WithLabelValues(string(docType), "transport_error").Inc()
		slog.Error("document upload failed",
			"user_id", session.UserID,
			"type", docType,
			"filename", filename,
			"error", err)
		return nil, err
	}

	if !result.Succeeded() {
		documentsUploaded.WithLabelValues(string(docType), "rejected").Inc()
		slog.Info("document rejected by backend",
			"user_id", session.UserID,
			"type", docType,
			"filename", filename,
			"reason", result.FailureMessage())
		return result, nil
	}

	s.appendResult(session.UserID, *result)
	documentsUploaded.WithLabelValues(string(docType), "success").Inc()
	slog.Info("document processed",
		"user_id", session.UserID,
		"type", docType,
		"document_id", result.ID,
		"category", result.Category)

	return result, nil
}

// appendResult prepends so the feed reads newest first.
func (s *uploadService) appendResult(userID string, result models.UploadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed := append([]models.UploadResult{result}, s.feeds[userID]...)
	if len(feed) > maxFeedLength {
		feed = feed[:maxFeedLength]
	}
	s.feeds[userID] = feed
}

func (s *uploadService) RecentResults(userID string) []models.UploadResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feed := s.feeds[userID]
	out := make([]models.UploadResult, len(feed))
	copy(out, feed)
	return out
}

func (s *uploadService) InFlight(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight[userID] > 0
}

func (s *uploadService) ClearResults(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feeds, userID)
}

func (s *uploadService) markInFlight(userID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight[userID] += delta
	if s.inFlight[userID] <= 0 {
		delete(s.inFlight, userID)
	}
}
