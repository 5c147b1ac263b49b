// Package view decouples the reservation form controller from any concrete
// rendering. A browser host binds Form to real inputs; Dialog wraps whatever
// modal/toast library the host ships.
package view

import "context"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Form is the view binding the controller reads values from and paints
// validation state onto. Implementations must degrade to a logged no-op when
// a bound element is missing rather than fail.
type Form interface {
	FieldValue(field string) string
	SetFieldValue(field, value string)
	// SetFieldError renders an error next to the field. An empty message
	// clears the decoration and leaves the field neutral.
	SetFieldError(field, message string)
	// SetFieldValid renders the positive confirmation marker.
	SetFieldValid(field string)
	SetButtonEnabled(enabled bool)
	SetButtonLabel(label string)
	Open()
	Close()
	Reset()
}

// Dialog is the confirmation/notification capability of the host. Confirm
// and Inform suspend the submission workflow until the user reacts.
type Dialog interface {
	Confirm(ctx context.Context, title, body string) (bool, error)
	Inform(ctx context.Context, title, body string) error
	Loading(message string)
	Notify(message string, kind Kind)
}
