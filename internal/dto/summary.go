package dto

import (
	"receiptai/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryRequest selects the year to aggregate
type SummaryRequest struct {
	Year int `json:"year" validate:"required,tax_year"`
}

// CategoryRowView is one row of a category table, ordered by total
// descending.
type CategoryRowView struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Count   int    `json:"count"`
	Total   string `json:"total"`
	Percent int    `json:"percent"`
}

// SectionView renders one side of the summary (receipts or invoices).
type SectionView struct {
	Count      int               `json:"count"`
	Total      string            `json:"total"`
	Categories []CategoryRowView `json:"categories"`
}

// SummaryResponse is the rendered tax summary. The invoice section is
// present only for paid-tier sessions; free-tier responses omit it
// entirely rather than sending zeros.
type SummaryResponse struct {
	Year       int          `json:"year"`
	Tier       string       `json:"tier"`
	GrandTotal string       `json:"grand_total"`
	Receipts   SectionView  `json:"receipts"`
	Invoices   *SectionView `json:"invoices,omitempty"`
}

// NewSummaryResponse renders a fetched summary for display. The input
// has already been tier-gated by the summary service; this only decides
// presentation (ordering, icons, currency formatting).
func NewSummaryResponse(summary *models.TaxSummary) *SummaryResponse {
	resp := &SummaryResponse{
		Year:       summary.Year,
		Tier:       string(summary.Tier),
		GrandTotal: FormatAmount(summary.Summary.GrandTotal, "USD"),
		Receipts:   newSectionView(summary.Summary.Receipts),
	}

	if summary.Tier == models.TierPaid {
		invoices := newSectionView(summary.Summary.Invoices)
		resp.Invoices = &invoices
	}

	return resp
}

func newSectionView(side models.SideSummary) SectionView {
	view := SectionView{
		Count:      side.Count,
		Total:      FormatAmount(side.Total, "USD"),
		Categories: make([]CategoryRowView, 0, len(side.ByCategory)),
	}

	for _, row := range models.SortedCategories(side.ByCategory) {
		view.Categories = append(view.Categories, CategoryRowView{
			Name:    row.Name,
			Icon:    CategoryIcon(row.Name),
			Count:   row.Count,
			Total:   FormatAmount(row.Total, "USD"),
			Percent: percentOf(row.Total, side.Total),
		})
	}

	return view
}

func percentOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	pct := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
