package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const provisioningPath = "/users/provisioned"

// notifyTimeout bounds the async delivery attempt so abandoned
// goroutines cannot pile up behind a dead webhook.
const notifyTimeout = 10 * time.Second

var provisioningNotifications = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "provisioning_notifications_total",
		Help: "Total number of user-provisioned notifications by outcome",
	},
	[]string{"outcome"},
)

// provisioningService fires the one-way "user provisioned" signal at
// the automation webhook. At most one attempt per event; the contract
// is explicitly no-delivery-guarantee.
type provisioningService struct {
	webhookBaseURL string
	httpClient     *http.Client
}

func NewProvisioningService(webhookBaseURL string) ProvisioningServiceInterface {
	return &provisioningService{
		webhookBaseURL: webhookBaseURL,
		httpClient:     &http.Client{},
	}
}

// NewProvisioningServiceWithClient is used by tests to inject a client.
func NewProvisioningServiceWithClient(webhookBaseURL string, hc *http.Client) ProvisioningServiceInterface {
	return &provisioningService{webhookBaseURL: webhookBaseURL, httpClient: hc}
}

func (s *provisioningService) Notify(ctx context.Context, userID, email string) error {
	payload, err := json.Marshal(map[string]string{
		"user_id": userID,
		"email":   email,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookBaseURL+provisioningPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		provisioningNotifications.WithLabelValues("failed").Inc()
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		provisioningNotifications.WithLabelValues("failed").Inc()
		return fmt.Errorf("provisioning webhook returned %d", resp.StatusCode)
	}

	provisioningNotifications.WithLabelValues("delivered").Inc()
	return nil
}

// NotifyAsync delivers in the background. The failure path is a debug
// log and a metric; nothing ever reaches the user.
func (s *provisioningService) NotifyAsync(userID, email string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.Notify(ctx, userID, email); err != nil {
			slog.Debug("provisioning notification dropped",
				"user_id", userID,
				"error", err)
		}
	}()
}
