// Package validation holds the pure field-level rules of the reservation
// form. Callers render the results; nothing here touches a view or a store.
package validation

import (
	"strings"
	"time"

	"resa/internal/domains/reservation/model"
	"resa/shared/constant"
	"resa/shared/failure"
	"resa/shared/timezone"
	"resa/shared/validator"
)

const (
	minAddressLength = 5
	maxMessageLength = 1000
)

// Field validates a single form field value against the rules of the form.
// It returns nil when the value is acceptable, or a failure carrying the
// user-facing message. The service identifier fields are hidden and
// pre-filled, so they are only checked when strict (full-form) validation is
// requested.
func Field(field, value string, now time.Time, strict bool) error {
	value = strings.TrimSpace(value)

	switch field {
	case model.FieldName:
		if err := validator.ValidateVar(value, "required,min=2,max=100"); err != nil {
			return failure.BadRequestFromString("please enter your full name")
		}
	case model.FieldEmail:
		if err := validator.ValidateVar(value, "required,email,max=100"); err != nil {
			return failure.BadRequestFromString("please enter a valid email address")
		}
	case model.FieldPhone:
		// Optional; absence is not an error.
		if value == constant.Empty {
			return nil
		}

		if err := validator.ValidateVar(value, "phone"); err != nil {
			return failure.BadRequestFromString("please enter a valid phone number")
		}
	case model.FieldDate:
		if value == constant.Empty {
			return failure.BadRequestFromString("please pick a date")
		}

		when, err := parseDate(value)
		if err != nil {
			return failure.BadRequestFromString("the date format is not recognized")
		}

		// Full-timestamp comparison, not date-only truncation: a same-day
		// value earlier than the current moment is rejected.
		if when.Before(now) {
			return failure.BadRequestFromString("the date cannot be in the past")
		}
	case model.FieldFrequency:
		if value == constant.Empty {
			return failure.BadRequestFromString("please choose a frequency")
		}
	case model.FieldAddress:
		if value == constant.Empty {
			return failure.BadRequestFromString("please enter your address")
		}

		if len([]rune(value)) < minAddressLength {
			return failure.BadRequestFromString("the address must be at least 5 characters")
		}
	case model.FieldMessage:
		if len([]rune(value)) > maxMessageLength {
			return failure.BadRequestFromString("the message cannot exceed 1000 characters")
		}
	case model.FieldConsent:
		if value != "true" {
			return failure.BadRequestFromString("you must accept the terms to continue")
		}
	case model.FieldServiceID, model.FieldServiceName, model.FieldServiceCategory:
		if !strict {
			return nil
		}

		if value == constant.Empty {
			return failure.BadRequestFromString("the selected service is incomplete, please reopen the booking form")
		}
	}

	return nil
}

// All validates every form field of the draft and returns the failures keyed
// by field name. An empty map means the draft is submittable.
func All(d model.Draft, now time.Time, strict bool) map[string]error {
	errs := make(map[string]error)

	for _, field := range model.AllFields() {
		if err := Field(field, d.Value(field), now, strict); err != nil {
			errs[field] = err
		}
	}

	return errs
}

// parseDate accepts the datetime-local widget format first, then RFC3339,
// then a bare calendar date (interpreted as midnight in the app timezone).
func parseDate(value string) (time.Time, error) {
	layouts := []string{
		constant.DateTimeLocalFormat,
		time.RFC3339,
		constant.DateOnlyFormat,
	}

	var lastErr error

	for _, layout := range layouts {
		when, err := timezone.Parse(layout, value)
		if err == nil {
			return when, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}
