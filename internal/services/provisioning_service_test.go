package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ProvisioningServiceTestSuite struct {
	suite.Suite
}

func TestProvisioningServiceSuite(t *testing.T) {
	suite.Run(t, new(ProvisioningServiceTestSuite))
}

func (s *ProvisioningServiceTestSuite) TestNotify_DeliversPayload() {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/users/provisioned", r.URL.Path)
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewProvisioningService(server.URL)
	err := service.Notify(context.Background(), "user-1", "jo@example.com")

	s.Require().NoError(err)
	s.Equal("user-1", got["user_id"])
	s.Equal("jo@example.com", got["email"])
}

func (s *ProvisioningServiceTestSuite) TestNotify_WebhookErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewProvisioningService(server.URL)
	err := service.Notify(context.Background(), "user-1", "jo@example.com")
	s.Error(err)
}

func (s *ProvisioningServiceTestSuite) TestNotify_TransportFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	service := NewProvisioningService(server.URL)
	err := service.Notify(context.Background(), "user-1", "jo@example.com")
	s.Error(err)
}

func (s *ProvisioningServiceTestSuite) TestNotifyAsync_FiresOnce() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewProvisioningService(server.URL)
	service.NotifyAsync("user-1", "jo@example.com")

	s.Eventually(func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// No retry follows, even after the first attempt completes.
	time.Sleep(50 * time.Millisecond)
	s.EqualValues(1, calls.Load())
}

func (s *ProvisioningServiceTestSuite) TestNotifyAsync_FailureIsSilent() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	service := NewProvisioningService(server.URL)

	// Must not panic or surface anything; just give the goroutine a
	// moment to run its course.
	service.NotifyAsync("user-1", "jo@example.com")
	time.Sleep(100 * time.Millisecond)
}
