package services

import (
	"context"
	"io"

	"receiptai/internal/backend"
	"receiptai/internal/identity"
	"receiptai/internal/models"
)

// IdentityAPIInterface is the session accessor: everything this service
// asks of the external identity provider. Implemented by
// *identity.Client.
type IdentityAPIInterface interface {
	// GetSession resolves a bearer token to the current session.
	// Absent or unusable sessions (including a failed lookup) return
	// identity.ErrNoSession; callers redirect to the auth entry point.
	GetSession(ctx context.Context, accessToken string) (*models.Session, error)

	SignIn(ctx context.Context, email, password string) (*identity.TokenGrant, error)
	SignUp(ctx context.Context, email, password string) error
	RequestPasswordReset(ctx context.Context, email, redirectTo string) error
	ExchangeCode(ctx context.Context, code string) (*identity.TokenGrant, error)
	SignOut(ctx context.Context, accessToken string) error
}

// DocumentBackendInterface is the transport to the document-processing
// backend. Implemented by *backend.Client.
type DocumentBackendInterface interface {
	UploadDocument(ctx context.Context, req backend.UploadRequest, token string) (*models.UploadResult, error)
	FetchTaxSummary(ctx context.Context, year int, token string) (*models.TaxSummary, error)
}

// UploadServiceInterface drives the dashboard upload workflow.
type UploadServiceInterface interface {
	// Upload encodes a raw file and forwards it. A result with
	// success=false comes back as a normal result; only transport and
	// boundary failures are errors.
	Upload(ctx context.Context, session *models.Session, file io.Reader, docType models.DocumentType, filename string) (*models.UploadResult, error)

	// UploadEncoded forwards an already-encoded payload, stripping a
	// data-URL prefix if one is present.
	UploadEncoded(ctx context.Context, session *models.Session, encoded string, docType models.DocumentType, filename string) (*models.UploadResult, error)

	// RecentResults returns the user's successful uploads from this
	// process's lifetime, newest first. Never persisted.
	RecentResults(userID string) []models.UploadResult

	// InFlight reports whether the user has an upload in progress. The
	// flag is advisory, for disabling UI controls; it does not enforce
	// mutual exclusion.
	InFlight(userID string) bool

	// ClearResults drops the user's feed, called on sign-out.
	ClearResults(userID string)
}

// SummaryServiceInterface drives the export workflow.
type SummaryServiceInterface interface {
	// Generate fetches a fresh tax summary for the year, replacing
	// nothing locally because nothing is kept. Free-tier sessions get
	// the invoice section stripped before anything can render it.
	Generate(ctx context.Context, session *models.Session, year int) (*models.TaxSummary, error)

	// ExportCSV generates the summary and renders it as a downloadable
	// CSV, returning the filename and contents.
	ExportCSV(ctx context.Context, session *models.Session, year int) (string, []byte, error)
}

// ProvisioningServiceInterface delivers the one-way "user provisioned"
// notification. No delivery guarantee: failures are logged and dropped,
// never retried, never surfaced.
type ProvisioningServiceInterface interface {
	Notify(ctx context.Context, userID, email string) error
	NotifyAsync(userID, email string)
}
