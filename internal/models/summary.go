package models

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryStat is an aggregation bucket keyed by category name. The
// backend computes these; the client never aggregates, only re-orders.
type CategoryStat struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// SideSummary aggregates one side of the summary (receipts or invoices).
type SideSummary struct {
	Count      int                     `json:"count"`
	Total      decimal.Decimal         `json:"total"`
	ByCategory map[string]CategoryStat `json:"by_category"`
}

// SummaryTotals is the aggregate block of a tax summary.
type SummaryTotals struct {
	Receipts   SideSummary     `json:"receipts"`
	Invoices   SideSummary     `json:"invoices"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ReceiptLine is a single processed receipt within a tax summary.
type ReceiptLine struct {
	ID          string          `json:"id"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ReceiptDate string          `json:"receipt_date"`
	Category    string          `json:"category"`
}

// InvoiceLine is a single processed invoice within a tax summary.
type InvoiceLine struct {
	ID          string          `json:"id"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	InvoiceDate string          `json:"invoice_date"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
}

// TaxSummary is the backend's full yearly aggregation for one user.
// Each fetch replaces any prior value entirely; it is never merged or
// cached.
type TaxSummary struct {
	UserID   string        `json:"user_id"`
	Year     int           `json:"year"`
	Tier     Tier          `json:"tier"`
	Summary  SummaryTotals `json:"summary"`
	Receipts []ReceiptLine `json:"receipts"`
	Invoices []InvoiceLine `json:"invoices"`
}

var ErrMissingYear = errors.New("tax summary is missing the year")

// Validate checks the minimal shape this service relies on.
func (t *TaxSummary) Validate() error {
	if t.Year == 0 {
		return ErrMissingYear
	}
	return nil
}

// StripInvoices removes the invoice section and its totals, recomputing
// the grand total so invoice amounts cannot leak through it. Applied
// whenever the session tier does not permit invoice features.
func (t *TaxSummary) StripInvoices() {
	t.Invoices = nil
	t.Summary.Invoices = SideSummary{Total: decimal.Zero}
	t.Summary.GrandTotal = t.Summary.Receipts.Total
}

// CategoryRow is one row of a category table, ready for ordering.
type CategoryRow struct {
	Name  string
	Count int
	Total decimal.Decimal
}

// SortedCategories flattens a category map into rows ordered by total
// descending. Equal totals order by name ascending so the result is
// deterministic regardless of map iteration order.
func SortedCategories(byCategory map[string]CategoryStat) []CategoryRow {
	rows := make([]CategoryRow, 0, len(byCategory))
	for name, stat := range byCategory {
		rows = append(rows, CategoryRow{Name: name, Count: stat.Count, Total: stat.Total})
	}

	sort.Slice(rows, func(i, j int) bool {
		cmp := rows[i].Total.Cmp(rows[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}
