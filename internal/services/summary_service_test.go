package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"receiptai/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func backendSummary() *models.TaxSummary {
	return &models.TaxSummary{
		UserID: "user-1",
		Year:   2024,
		Tier:   models.TierPaid,
		Summary: models.SummaryTotals{
			Receipts: models.SideSummary{
				Count: 3,
				Total: decimal.NewFromFloat(1234.56),
				ByCategory: map[string]models.CategoryStat{
					"meals":  {Count: 2, Total: decimal.NewFromInt(800)},
					"travel": {Count: 1, Total: decimal.NewFromFloat(434.56)},
				},
			},
			Invoices: models.SideSummary{
				Count: 1,
				Total: decimal.NewFromInt(1200),
				ByCategory: map[string]models.CategoryStat{
					"software": {Count: 1, Total: decimal.NewFromInt(1200)},
				},
			},
			GrandTotal: decimal.NewFromFloat(2434.56),
		},
		Receipts: []models.ReceiptLine{
			{ID: "r1", Merchant: "Blue Bottle", Amount: decimal.NewFromInt(800), Currency: "USD", ReceiptDate: "2024-03-01", Category: "meals"},
		},
		Invoices: []models.InvoiceLine{
			{ID: "i1", Vendor: "Acme Hosting", Amount: decimal.NewFromInt(1200), Currency: "USD", InvoiceDate: "2024-06-30", Category: "software"},
		},
	}
}

type SummaryServiceTestSuite struct {
	suite.Suite
	backend *stubBackend
	service SummaryServiceInterface
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.backend = &stubBackend{}
	s.service = NewSummaryService(s.backend)
}

func paidSession() *models.Session {
	return &models.Session{UserID: "user-1", Tier: models.TierPaid, AccessToken: "tok-1"}
}

func freeSession() *models.Session {
	return &models.Session{UserID: "user-1", Tier: models.TierFree, AccessToken: "tok-1"}
}

func (s *SummaryServiceTestSuite) TestGenerate_PaidTierKeepsInvoices() {
	s.backend.summaryFn = func(year int) (*models.TaxSummary, error) {
		s.Equal(2024, year)
		return backendSummary(), nil
	}

	summary, err := s.service.Generate(context.Background(), paidSession(), 2024)

	s.Require().NoError(err)
	s.Equal("tok-1", s.backend.lastToken)
	s.Len(summary.Invoices, 1)
	s.True(summary.Summary.GrandTotal.Equal(decimal.NewFromFloat(2434.56)))
}

func (s *SummaryServiceTestSuite) TestGenerate_FreeTierStripsInvoices() {
	s.backend.summaryFn = func(int) (*models.TaxSummary, error) {
		return backendSummary(), nil
	}

	summary, err := s.service.Generate(context.Background(), freeSession(), 2024)

	s.Require().NoError(err)
	s.Equal(models.TierFree, summary.Tier)
	s.Nil(summary.Invoices)
	s.Zero(summary.Summary.Invoices.Count)
	s.True(summary.Summary.GrandTotal.Equal(decimal.NewFromFloat(1234.56)))
}

func (s *SummaryServiceTestSuite) TestGenerate_SessionTierOverridesPayloadTier() {
	s.backend.summaryFn = func(int) (*models.TaxSummary, error) {
		summary := backendSummary()
		summary.Tier = models.TierPaid // backend claims paid
		return summary, nil
	}

	summary, err := s.service.Generate(context.Background(), freeSession(), 2024)

	s.Require().NoError(err)
	s.Equal(models.TierFree, summary.Tier)
	s.Nil(summary.Invoices)
}

func (s *SummaryServiceTestSuite) TestGenerate_ErrorPropagates() {
	s.backend.summaryFn = func(int) (*models.TaxSummary, error) {
		return nil, errors.New("connection refused")
	}

	_, err := s.service.Generate(context.Background(), paidSession(), 2024)
	s.Error(err)
}

func (s *SummaryServiceTestSuite) TestExportCSV_PaidTier() {
	s.backend.summaryFn = func(int) (*models.TaxSummary, error) {
		return backendSummary(), nil
	}

	filename, data, err := s.service.ExportCSV(context.Background(), paidSession(), 2024)

	s.Require().NoError(err)
	s.Equal("tax-summary-2024.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 3, "header, one receipt, one invoice")
	s.Equal("receipt", records[1][0])
	s.Equal("invoice", records[2][0])
}

func (s *SummaryServiceTestSuite) TestExportCSV_FreeTierOmitsInvoiceRows() {
	s.backend.summaryFn = func(int) (*models.TaxSummary, error) {
		return backendSummary(), nil
	}

	_, data, err := s.service.ExportCSV(context.Background(), freeSession(), 2024)

	s.Require().NoError(err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2, "header and one receipt only")
	s.Equal("receipt", records[1][0])
}
