// Package export turns an in-memory tax summary into a downloadable
// CSV document. It performs no network I/O and no aggregation.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"receiptai/internal/models"
)

// csvHeader is the fixed column layout consumed by downstream tax
// tooling. Order matters.
var csvHeader = []string{"Type", "Date", "Merchant/Vendor", "Category", "Amount", "Currency"}

// Build renders one CSV document: the header, one row per receipt
// (using receipt_date), then one row per invoice (using invoice_date).
// Fields are RFC 4180 escaped, so merchant names containing commas or
// quotes round-trip intact.
func Build(summary *models.TaxSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, r := range summary.Receipts {
		row := []string{
			string(models.DocumentTypeReceipt),
			r.ReceiptDate,
			r.Merchant,
			r.Category,
			r.Amount.String(),
			r.Currency,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write receipt row: %w", err)
		}
	}

	for _, inv := range summary.Invoices {
		row := []string{
			string(models.DocumentTypeInvoice),
			inv.InvoiceDate,
			inv.Vendor,
			inv.Category,
			inv.Amount.String(),
			inv.Currency,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write invoice row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Filename returns the download name for a given summary year.
func Filename(year int) string {
	return fmt.Sprintf("tax-summary-%d.csv", year)
}
