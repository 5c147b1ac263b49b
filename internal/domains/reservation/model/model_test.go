package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resa/internal/domains/reservation/model"
)

func TestDraftValueRoundTrip(t *testing.T) {
	var draft model.Draft

	draft.SetValue(model.FieldName, "  Jean Dupont  ")
	draft.SetValue(model.FieldEmail, "jean@example.com")
	draft.SetValue(model.FieldConsent, "true")
	draft.SetValue(model.FieldServiceID, "svc1")

	assert.Equal(t, "Jean Dupont", draft.Name, "free text is trimmed")
	assert.Equal(t, "Jean Dupont", draft.Value(model.FieldName))
	assert.Equal(t, "jean@example.com", draft.Value(model.FieldEmail))
	assert.True(t, draft.Consent)
	assert.Equal(t, "true", draft.Value(model.FieldConsent))
	assert.Equal(t, "svc1", draft.Value(model.FieldServiceID))
}

func TestDraftSetValueConsentSpellings(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "true", expected: true},
		{value: "1", expected: true},
		{value: "false", expected: false},
		{value: "0", expected: false},
		{value: "", expected: false},
		{value: "garbage", expected: false},
	}

	for _, tt := range tests {
		t.Run("consent "+tt.value, func(t *testing.T) {
			var draft model.Draft
			draft.SetValue(model.FieldConsent, tt.value)

			assert.Equal(t, tt.expected, draft.Consent)
		})
	}
}

func TestDraftUnknownFieldIsIgnored(t *testing.T) {
	var draft model.Draft
	draft.SetValue("unknown", "value")

	assert.Equal(t, model.Draft{}, draft)
	assert.Equal(t, "", draft.Value("unknown"))
}

func TestAllFieldsOrdering(t *testing.T) {
	all := model.AllFields()

	assert.Len(t, all, len(model.Fields)+len(model.ServiceFields))
	assert.Equal(t, model.FieldName, all[0])
	assert.Equal(t, model.FieldServiceCategory, all[len(all)-1])
}
