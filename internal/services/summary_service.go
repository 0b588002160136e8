package services

import (
	"context"
	"log/slog"

	"receiptai/internal/export"
	"receiptai/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var taxSummariesGenerated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tax_summaries_generated_total",
		Help: "Total number of tax summary generations by outcome",
	},
	[]string{"outcome"},
)

type summaryService struct {
	backend DocumentBackendInterface
}

func NewSummaryService(backendClient DocumentBackendInterface) SummaryServiceInterface {
	return &summaryService{backend: backendClient}
}

func (s *summaryService) Generate(ctx context.Context, session *models.Session, year int) (*models.TaxSummary, error) {
	summary, err := s.backend.FetchTaxSummary(ctx, year, session.AccessToken)
	if err != nil {
		taxSummariesGenerated.WithLabelValues("error").Inc()
		slog.Error("tax summary fetch failed",
			"user_id", session.UserID,
			"year", year,
			"error", err)
		return nil, err
	}

	// The session, not the backend payload, is the authority on what
	// this user may see.
	summary.Tier = session.Tier
	if !session.IsPaid() {
		summary.StripInvoices()
	}

	taxSummariesGenerated.WithLabelValues("success").Inc()
	slog.Info("tax summary generated",
		"user_id", session.UserID,
		"year", year,
		"receipt_count", summary.Summary.Receipts.Count,
		"invoice_count", summary.Summary.Invoices.Count)

	return summary, nil
}

func (s *summaryService) ExportCSV(ctx context.Context, session *models.Session, year int) (string, []byte, error) {
	summary, err := s.Generate(ctx, session, year)
	if err != nil {
		return "", nil, err
	}

	data, err := export.Build(summary)
	if err != nil {
		return "", nil, err
	}

	return export.Filename(summary.Year), data, nil
}
