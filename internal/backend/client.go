package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"receiptai/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	uploadPath  = "/receipts/upload"
	summaryPath = "/export/tax-summary"
)

var (
	outboundDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "document_backend_request_duration_milliseconds",
			Help:    "Document backend request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
		[]string{"endpoint", "outcome"},
	)
)

// ErrMalformedResponse means the backend answered but the payload did
// not carry the shape this service requires. Rejected at the boundary
// rather than propagated into rendering.
var ErrMalformedResponse = errors.New("document backend returned a malformed payload")

// APIError is an application-level failure the backend returned as a
// structured body. Its message is shown to the user verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// UploadRequest is the wire payload for a document upload.
type UploadRequest struct {
	Image    string `json:"image"`
	Type     string `json:"type"`
	Filename string `json:"filename"`
}

// Client is the typed HTTP client for the document-processing backend.
// It is a dumb pipe: one authenticated POST per operation, no retry, no
// client-side timeout, and no interpretation of the payload beyond
// boundary validation. Transport failures propagate to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadDocument sends one encoded document to the backend and returns
// its verdict verbatim. The result may itself describe a failure
// (success=false); that is not an error here.
func (c *Client) UploadDocument(ctx context.Context, req UploadRequest, token string) (*models.UploadResult, error) {
	start := time.Now()

	body, err := c.post(ctx, uploadPath, req, token)
	if err != nil {
		outboundDuration.WithLabelValues("upload", "transport_error").Observe(msSince(start))
		return nil, err
	}

	var result models.UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		outboundDuration.WithLabelValues("upload", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := result.Validate(); err != nil {
		outboundDuration.WithLabelValues("upload", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	outboundDuration.WithLabelValues("upload", "ok").Observe(msSince(start))
	return &result, nil
}

// FetchTaxSummary requests the yearly aggregation for the token's user.
// An application-level failure body ({"error": ...}) comes back as an
// *APIError carrying the backend's message.
func (c *Client) FetchTaxSummary(ctx context.Context, year int, token string) (*models.TaxSummary, error) {
	start := time.Now()

	body, err := c.post(ctx, summaryPath, map[string]int{"year": year}, token)
	if err != nil {
		outboundDuration.WithLabelValues("tax_summary", "transport_error").Observe(msSince(start))
		return nil, err
	}

	var probe struct {
		Error   string           `json:"error"`
		Summary *json.RawMessage `json:"summary"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		outboundDuration.WithLabelValues("tax_summary", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if probe.Error != "" {
		outboundDuration.WithLabelValues("tax_summary", "rejected").Observe(msSince(start))
		return nil, &APIError{Message: probe.Error}
	}
	if probe.Summary == nil {
		outboundDuration.WithLabelValues("tax_summary", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: missing summary block", ErrMalformedResponse)
	}

	var summary models.TaxSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		outboundDuration.WithLabelValues("tax_summary", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := summary.Validate(); err != nil {
		outboundDuration.WithLabelValues("tax_summary", "malformed").Observe(msSince(start))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	outboundDuration.WithLabelValues("tax_summary", "ok").Observe(msSince(start))
	return &summary, nil
}

// post issues one authenticated POST and returns the raw body.
// Transport errors are returned untouched so the caller can map them to
// a generic "backend unreachable" message.
func (c *Client) post(ctx context.Context, path string, payload interface{}, token string) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Milliseconds())
}
