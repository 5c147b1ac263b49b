// Package bookingapi is the outbound HTTP client for the remote booking API.
package bookingapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"resa/config"
	"resa/infras/otel"
	"resa/internal/domains/reservation/model/dto"
	"resa/shared/constant"
	"resa/shared/failure"
	"resa/shared/validator"
)

const (
	reservationsPath = "/v1/contact/reservations"
	profilePath      = "/v1/users/me"
)

// Contact exposes the booking API operations the form controller consumes.
type Contact interface {
	// CreateReservation submits a finalized reservation. Endpoint rejections
	// come back as failures carrying the response status code, with 429
	// signalling rate limiting.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest) error
	// LoadUser fetches the signed-in user's profile. A missing session is
	// not an error: found is false and the profile is zero.
	LoadUser(ctx context.Context) (profile dto.UserProfile, found bool, err error)
}

type clientImpl struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Contact {
	return &clientImpl{
		baseURL: strings.TrimRight(cfg.BookingAPI.BaseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.BookingAPI.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorResponse) text(fallback string) string {
	if e.Error != "" {
		return e.Error
	}

	if e.Message != "" {
		return e.Message
	}

	return fallback
}

// CreateReservation implements Contact.
func (c *clientImpl) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Msg("reservation payload failed pre-flight validation")

		return err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reservationsPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build reservation request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Msg("reservation request failed")

		return fmt.Errorf("reservation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		scope.AddEvent("Reservation accepted by booking API")

		return nil
	}

	var body errorResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		log.Warn().Err(decodeErr).Int("status", resp.StatusCode).Msg("could not decode booking API error body")
	}

	log.Error().Int("status", resp.StatusCode).Str("message", body.text("")).Msg("booking API rejected the reservation")

	return failure.FromStatus(resp.StatusCode, body.text("the reservation could not be created")) //nolint:wrapcheck
}

// LoadUser implements Contact.
func (c *clientImpl) LoadUser(ctx context.Context) (profile dto.UserProfile, found bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".LoadUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return profile, false, fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Msg("profile request failed")

		return profile, false, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err = json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return dto.UserProfile{}, false, fmt.Errorf("failed to decode user profile: %w", err)
		}

		return profile, true, nil
	case http.StatusUnauthorized, http.StatusNotFound:
		// No signed-in user; the form simply stays as typed.
		return dto.UserProfile{}, false, nil
	default:
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)

		return dto.UserProfile{}, false, failure.FromStatus(resp.StatusCode, body.text("failed to load user profile")) //nolint:wrapcheck
	}
}
