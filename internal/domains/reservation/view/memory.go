package view

import (
	"sync"

	"github.com/rs/zerolog/log"

	"resa/internal/domains/reservation/model"
)

// MemoryForm is a map-backed Form for headless hosts and tests. Unknown
// fields are logged and ignored, mirroring how a document-bound view degrades
// when an expected element is missing.
type MemoryForm struct {
	mu            sync.Mutex
	values        map[string]string
	errors        map[string]string
	valid         map[string]bool
	buttonEnabled bool
	buttonLabel   string
	open          bool
}

func NewMemoryForm() *MemoryForm {
	values := make(map[string]string, len(model.AllFields()))
	for _, field := range model.AllFields() {
		values[field] = ""
	}

	return &MemoryForm{
		values: values,
		errors: make(map[string]string),
		valid:  make(map[string]bool),
	}
}

func (f *MemoryForm) known(field string) bool {
	_, ok := f.values[field]
	if !ok {
		log.Warn().Str("field", field).Msg("form field is not bound, ignoring")
	}

	return ok
}

// FieldValue implements Form.
func (f *MemoryForm) FieldValue(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.known(field) {
		return ""
	}

	return f.values[field]
}

// SetFieldValue implements Form.
func (f *MemoryForm) SetFieldValue(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.known(field) {
		return
	}

	f.values[field] = value
}

// SetFieldError implements Form.
func (f *MemoryForm) SetFieldError(field, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.known(field) {
		return
	}

	delete(f.valid, field)

	if message == "" {
		delete(f.errors, field)
		return
	}

	f.errors[field] = message
}

// SetFieldValid implements Form.
func (f *MemoryForm) SetFieldValid(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.known(field) {
		return
	}

	delete(f.errors, field)
	f.valid[field] = true
}

// SetButtonEnabled implements Form.
func (f *MemoryForm) SetButtonEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buttonEnabled = enabled
}

// SetButtonLabel implements Form.
func (f *MemoryForm) SetButtonLabel(label string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buttonLabel = label
}

// Open implements Form.
func (f *MemoryForm) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = true
}

// Close implements Form.
func (f *MemoryForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = false
}

// Reset implements Form. Editable fields are cleared; the hidden service
// identifiers keep their pre-filled values, as a document form reset would.
func (f *MemoryForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range model.Fields {
		f.values[field] = ""
	}

	f.errors = make(map[string]string)
	f.valid = make(map[string]bool)
}

// FieldError reports the rendered error message for a field, if any.
func (f *MemoryForm) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.errors[field]
}

// FieldValid reports whether the positive confirmation marker is shown.
func (f *MemoryForm) FieldValid(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.valid[field]
}

// ButtonEnabled reports the submit button state.
func (f *MemoryForm) ButtonEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.buttonEnabled
}

// ButtonLabel reports the submit button label.
func (f *MemoryForm) ButtonLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.buttonLabel
}

// IsOpen reports whether the form modal is open.
func (f *MemoryForm) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.open
}
