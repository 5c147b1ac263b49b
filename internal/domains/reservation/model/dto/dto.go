package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resa/internal/domains/reservation/model"
)

// CreateReservationRequest is the finalized payload sent to the booking API.
// It is built from a validated draft at submission time only; the id,
// createdAt and normalized phone never flow back into the persisted draft.
type CreateReservationRequest struct {
	ID              string `json:"id"              validate:"required"`
	Name            string `json:"name"            validate:"required,min=2,max=100"`
	Email           string `json:"email"           validate:"required,email,max=100"`
	Phone           string `json:"phone"           validate:"omitempty,phone"`
	Date            string `json:"date"            validate:"required"`
	Frequency       string `json:"frequency"       validate:"required"`
	Address         string `json:"address"         validate:"required,min=5"`
	Message         string `json:"message"         validate:"omitempty,max=1000"`
	Consent         bool   `json:"consentement"`
	ServiceID       string `json:"serviceId"       validate:"required"`
	ServiceName     string `json:"serviceName"     validate:"required"`
	ServiceCategory string `json:"serviceCategory" validate:"required"`
	CreatedAt       string `json:"createdAt"       validate:"required"`
}

// FromDraft finalizes a draft for submission: a fresh id, the submission
// timestamp, and the phone number normalized to the configured country prefix.
func FromDraft(d model.Draft, phonePrefix string, now time.Time) CreateReservationRequest {
	return CreateReservationRequest{
		ID:              uuid.NewString(),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           NormalizePhone(d.Phone, phonePrefix),
		Date:            d.Date,
		Frequency:       d.Frequency,
		Address:         d.Address,
		Message:         d.Message,
		Consent:         d.Consent,
		ServiceID:       d.ServiceID,
		ServiceName:     d.ServiceName,
		ServiceCategory: d.ServiceCategory,
		CreatedAt:       now.Format(time.RFC3339),
	}
}

var phoneSeparators = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")

// NormalizePhone strips formatting separators and anchors the number to the
// given country prefix. A national leading zero is replaced by the prefix;
// bare national-significant numbers get the prefix prepended.
func NormalizePhone(phone, prefix string) string {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(phone))

	switch {
	case cleaned == "":
		return ""
	case strings.HasPrefix(cleaned, prefix):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return prefix + cleaned[1:]
	default:
		return prefix + cleaned
	}
}

// UserProfile is the signed-in user's contact profile, used to pre-fill the
// reopened form after a cancelled pre-confirmation.
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
