package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type receivedForm struct {
	Value map[string][]string
}

// formServer поднимает фейковый Web3Forms и отдаёт последнюю полученную форму
func formServer(t *testing.T, response string) (*httptest.Server, *receivedForm) {
	t.Helper()
	received := &receivedForm{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		received.Value = r.MultipartForm.Value
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, received
}

func TestSendInquiry(t *testing.T) {
	srv, received := formServer(t, `{"success":true,"message":"Email sent"}`)
	s := NewSubmissionService("key-123", srv.URL, srv.Client(), zap.NewNop())
	s.now = func() time.Time { return time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC) }

	result, err := s.SendInquiry(context.Background(), model.Inquiry{
		Name: "Ann", Phone: "555", Email: "not-an-email", Brand: "Apple", Model: "iPhone 15", Repair: "Screen Repair",
	})
	require.NoError(t, err)

	assert.Equal(t, &model.SubmissionResult{Success: true, Method: "Web3Forms"}, result)
	form := received.Value
	assert.Equal(t, []string{"key-123"}, form["access_key"])
	assert.Equal(t, []string{"Mobilphonefix Website"}, form["from_name"])
	assert.Equal(t, []string{"Apple iPhone 15"}, form["device"])
	assert.Equal(t, []string{"Screen Repair"}, form["repair"])
	assert.NotContains(t, form, "email")
	assert.NotContains(t, form, "address")
	assert.Contains(t, form["message"][0], "Email: not-an-email")
	assert.Contains(t, form["message"][0], "Received: 1/2/2025, 3:04:05 PM")
}

func TestSendAppointment(t *testing.T) {
	srv, received := formServer(t, `{"success":true}`)
	s := NewSubmissionService("key-123", srv.URL, srv.Client(), zap.NewNop())

	_, err := s.SendAppointment(context.Background(), model.Appointment{
		Name: "Ann", Phone: "555", Email: "ann@example.com", Address: "1 Main St",
		Date: "2025-03-12", Time: "9:00 AM - 11:00 AM", Brand: "Samsung", Model: "Galaxy S24", Repair: "Battery Replacement",
	})
	require.NoError(t, err)

	form := received.Value
	assert.Equal(t, []string{"ann@example.com"}, form["email"])
	assert.Equal(t, []string{"1 Main St"}, form["address"])
	assert.Equal(t, []string{"2025-03-12"}, form["date"])
	assert.Equal(t, []string{"9:00 AM - 11:00 AM"}, form["time"])
	assert.Equal(t, []string{"📅 New Appointment Request - Samsung Galaxy S24"}, form["subject"])
}

func TestSendRejected(t *testing.T) {
	srv, _ := formServer(t, `{"success":false,"message":"Invalid access key"}`)
	s := NewSubmissionService("key-123", srv.URL, srv.Client(), zap.NewNop())

	_, err := s.SendInquiry(context.Background(), model.Inquiry{Name: "Ann", Phone: "555"})
	assert.EqualError(t, err, "Invalid access key")

	srv2, _ := formServer(t, `{"success":false}`)
	s2 := NewSubmissionService("key-123", srv2.URL, srv2.Client(), zap.NewNop())

	_, err = s2.SendAppointment(context.Background(), model.Appointment{Name: "Ann"})
	assert.EqualError(t, err, "Failed to send appointment")
}

func TestNotConfiguredSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	for _, key := range []string{"", PlaceholderAccessKey} {
		s := NewSubmissionService(key, srv.URL, srv.Client(), zap.NewNop())
		_, err := s.SendInquiry(context.Background(), model.Inquiry{})
		assert.ErrorIs(t, err, model.ErrGatewayNotConfigured)
	}
	assert.False(t, called)
}
