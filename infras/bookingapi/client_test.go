package bookingapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resa/config"
	"resa/infras/bookingapi"
	"resa/infras/otel/mocks"
	"resa/internal/domains/reservation/model"
	"resa/internal/domains/reservation/model/dto"
	"resa/shared/failure"
)

func newClient(baseURL string) bookingapi.Contact {
	cfg := &config.Config{}
	cfg.BookingAPI.BaseURL = baseURL
	cfg.BookingAPI.TimeoutSeconds = 5

	return bookingapi.New(cfg, mocks.NewOtel())
}

func sampleRequest() dto.CreateReservationRequest {
	return dto.FromDraft(model.Draft{
		Name:            "Jean Dupont",
		Email:           "jean@example.com",
		Phone:           "612345678",
		Date:            "2026-09-01T09:00",
		Frequency:       "weekly",
		Address:         "12 rue de Paris",
		Consent:         true,
		ServiceID:       "svc1",
		ServiceName:     "Ménage",
		ServiceCategory: "cleaning",
	}, "+33", time.Now())
}

func TestCreateReservation(t *testing.T) {
	var received dto.CreateReservationRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contact/reservations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newClient(server.URL)

	err := client.CreateReservation(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", received.Name)
	assert.Equal(t, "+33612345678", received.Phone)
	assert.NotEmpty(t, received.ID)
	assert.NotEmpty(t, received.CreatedAt)
}

func TestCreateReservationRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
	}))
	defer server.Close()

	client := newClient(server.URL)

	err := client.CreateReservation(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
	assert.Equal(t, "rate limit exceeded", err.Error())
}

func TestCreateReservationEndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "date already booked"})
	}))
	defer server.Close()

	client := newClient(server.URL)

	err := client.CreateReservation(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "date already booked", err.Error())
}

func TestCreateReservationEmptyErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newClient(server.URL)

	err := client.CreateReservation(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "the reservation could not be created", err.Error())
}

func TestCreateReservationPreflightValidation(t *testing.T) {
	called := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newClient(server.URL)

	req := sampleRequest()
	req.Email = "not-an-email"

	err := client.CreateReservation(context.Background(), req)

	require.Error(t, err)
	assert.False(t, called, "invalid payloads never reach the wire")
}

func TestLoadUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/users/me", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dto.UserProfile{
			Name:    "Jean Dupont",
			Email:   "jean@example.com",
			Phone:   "0612345678",
			Address: "12 rue de Paris",
		})
	}))
	defer server.Close()

	client := newClient(server.URL)

	profile, found, err := client.LoadUser(context.Background())

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Jean Dupont", profile.Name)
	assert.Equal(t, "jean@example.com", profile.Email)
}

func TestLoadUserNotSignedIn(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := newClient(server.URL)

		profile, found, err := client.LoadUser(context.Background())

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, dto.UserProfile{}, profile)

		server.Close()
	}
}
