package dto

import "receiptai/internal/models"

// UploadJSONRequest is the JSON variant of a document upload, used by
// clients that already encoded the file (possibly as a data URL, which
// gets its prefix stripped before forwarding). Browser clients usually
// send multipart instead.
type UploadJSONRequest struct {
	Image    string `json:"image" validate:"required"`
	Type     string `json:"type" validate:"required,document_type"`
	Filename string `json:"filename" validate:"required"`
}

// categoryIcons maps backend-assigned categories to their display
// icons. Categories are free-form, so unknown ones fall back to the
// default document icon.
var categoryIcons = map[string]string{
	"meals":         "🍽",
	"travel":        "✈️",
	"supplies":      "📦",
	"utilities":     "💡",
	"software":      "💻",
	"hardware":      "🖥",
	"accommodation": "🏨",
	"services":      "🔧",
	"other":         "📄",
}

const defaultCategoryIcon = "📄"

// CategoryIcon returns the display icon for a category.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultCategoryIcon
}

// DocumentCardView is the rendered form of one upload result for the
// dashboard's processed-documents feed.
type DocumentCardView struct {
	Name          string `json:"name"`
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency,omitempty"`
	Category      string `json:"category,omitempty"`
	Icon          string `json:"icon"`
	Type          string `json:"type"`
	DueDate       string `json:"due_date,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

// NewDocumentCard builds the card view for a successful upload result.
func NewDocumentCard(result *models.UploadResult) DocumentCardView {
	card := DocumentCardView{
		Name:          result.DisplayName(),
		Date:          result.Date,
		Currency:      result.Currency,
		Category:      result.Category,
		Icon:          CategoryIcon(result.Category),
		Type:          result.Type,
		DueDate:       result.DueDate,
		InvoiceNumber: result.InvoiceNumber,
	}

	if result.Amount != nil {
		card.Amount = FormatAmount(*result.Amount, result.Currency)
	} else {
		card.Amount = "—"
	}
	if card.Date == "" {
		card.Date = "—"
	}

	return card
}

// NewDocumentCards renders a result feed, preserving its order.
func NewDocumentCards(results []models.UploadResult) []DocumentCardView {
	cards := make([]DocumentCardView, 0, len(results))
	for i := range results {
		cards = append(cards, NewDocumentCard(&results[i]))
	}
	return cards
}
