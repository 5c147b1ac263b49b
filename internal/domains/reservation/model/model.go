package model

import (
	"strconv"
	"strings"

	"resa/shared"
)

const (
	EntityName = "reservation"

	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldDate            = "date"
	FieldFrequency       = "frequency"
	FieldAddress         = "address"
	FieldMessage         = "message"
	FieldConsent         = "consentement"
	FieldServiceID       = "serviceId"
	FieldServiceName     = "serviceName"
	FieldServiceCategory = "serviceCategory"
)

// Fields lists the user-editable form fields in display order.
var Fields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldDate,
	FieldFrequency,
	FieldAddress,
	FieldMessage,
	FieldConsent,
}

// ServiceFields lists the hidden, pre-filled service identifier fields.
var ServiceFields = []string{
	FieldServiceID,
	FieldServiceName,
	FieldServiceCategory,
}

// AllFields returns the editable fields followed by the service fields.
func AllFields() []string {
	all := make([]string, 0, len(Fields)+len(ServiceFields))
	all = append(all, Fields...)
	all = append(all, ServiceFields...)

	return all
}

// Draft is the in-progress reservation form snapshot. It carries only what
// the user typed plus the pre-filled service identifiers; submission-only
// values (id, createdAt, normalized phone) are derived elsewhere and are
// never part of the persisted draft.
type Draft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Frequency       string `json:"frequency"`
	Address         string `json:"address"`
	Message         string `json:"message"`
	Consent         bool   `json:"consentement"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`
}

// Value returns the draft value of the named form field as a string. The
// consent checkbox is rendered as "true"/"false".
func (d Draft) Value(field string) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldDate:
		return d.Date
	case FieldFrequency:
		return d.Frequency
	case FieldAddress:
		return d.Address
	case FieldMessage:
		return d.Message
	case FieldConsent:
		return strconv.FormatBool(d.Consent)
	case FieldServiceID:
		return d.ServiceID
	case FieldServiceName:
		return d.ServiceName
	case FieldServiceCategory:
		return d.ServiceCategory
	}

	return ""
}

// SetValue assigns a raw form value to the named field. Free-text values are
// trimmed; the consent checkbox accepts the usual boolean spellings.
func (d *Draft) SetValue(field, value string) {
	value = strings.TrimSpace(value)

	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldDate:
		d.Date = value
	case FieldFrequency:
		d.Frequency = value
	case FieldAddress:
		d.Address = value
	case FieldMessage:
		d.Message = value
	case FieldConsent:
		if checked := shared.ConvertStringToBool(value); checked != nil {
			d.Consent = *checked
		} else {
			d.Consent = false
		}
	case FieldServiceID:
		d.ServiceID = value
	case FieldServiceName:
		d.ServiceName = value
	case FieldServiceCategory:
		d.ServiceCategory = value
	}
}
