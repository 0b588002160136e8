package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes the two document kinds the processing
// backend understands.
type DocumentType string

const (
	DocumentTypeReceipt DocumentType = "receipt"
	DocumentTypeInvoice DocumentType = "invoice"
)

var ErrInvalidDocumentType = errors.New("document type must be receipt or invoice")

// ParseDocumentType validates a raw type string from a request.
func ParseDocumentType(raw string) (DocumentType, error) {
	switch DocumentType(raw) {
	case DocumentTypeReceipt, DocumentTypeInvoice:
		return DocumentType(raw), nil
	}
	return "", ErrInvalidDocumentType
}

// UploadResult is the processing backend's verdict on a single upload.
// All extraction fields are optional; the backend owns extraction and
// categorization, this service only transports the result. Success is a
// pointer so that a payload missing the flag entirely can be rejected
// at the boundary instead of defaulting to false.
type UploadResult struct {
	Success       *bool            `json:"success"`
	ID            string           `json:"id,omitempty"`
	Type          string           `json:"type,omitempty"`
	Merchant      string           `json:"merchant,omitempty"`
	Vendor        string           `json:"vendor,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      string           `json:"currency,omitempty"`
	Date          string           `json:"date,omitempty"`
	DueDate       string           `json:"due_date,omitempty"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	Category      string           `json:"category,omitempty"`
	Error         string           `json:"error,omitempty"`
	Message       string           `json:"message,omitempty"`
}

var ErrMissingSuccessFlag = errors.New("upload result is missing the success flag")

// Validate rejects payloads that do not carry the success flag. The
// rest of the shape is intentionally loose: the backend may add fields
// at any time.
func (r *UploadResult) Validate() error {
	if r.Success == nil {
		return ErrMissingSuccessFlag
	}
	return nil
}

// Succeeded reports whether the backend accepted and processed the upload.
func (r *UploadResult) Succeeded() bool {
	return r.Success != nil && *r.Success
}

// FailureMessage returns the backend's failure text, preferring the
// human-oriented message over the error code.
func (r *UploadResult) FailureMessage() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Error != "" {
		return r.Error
	}
	return "Upload failed"
}

// DisplayName returns the counterparty name for rendering, whichever of
// merchant or vendor the backend filled in.
func (r *UploadResult) DisplayName() string {
	if r.Merchant != "" {
		return r.Merchant
	}
	if r.Vendor != "" {
		return r.Vendor
	}
	return "Unknown"
}
