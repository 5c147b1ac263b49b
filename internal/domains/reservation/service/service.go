package service

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"resa/config"
	"resa/infras/bookingapi"
	"resa/infras/otel"
	"resa/internal/domains/reservation/model"
	"resa/internal/domains/reservation/model/dto"
	"resa/internal/domains/reservation/store"
	"resa/internal/domains/reservation/validation"
	"resa/internal/domains/reservation/view"
	"resa/internal/observability/metrics"
	"resa/shared/constant"
	"resa/shared/failure"
	"resa/shared/timezone"
)

// State is a submission workflow position. Submit reports the terminal state
// it reached so hosts and tests can observe the outcome.
type State string

const (
	StateIdle          State = "idle"
	StateValidating    State = "validating"
	StatePreConfirming State = "pre_confirming"
	StateSubmitting    State = "submitting"
	StateSucceeded     State = "succeeded"
	StateFailed        State = "failed"
	StateCancelled     State = "cancelled"
)

const (
	buttonLabelDefault = "Book now"
	buttonLabelSending = "Sending..."

	confirmTitle = "Confirm your reservation"
	successTitle = "Reservation sent"

	msgValidation  = "Some fields need your attention before we can continue."
	msgSending     = "Sending your reservation..."
	msgSuccess     = "Your reservation request has been sent. We will get back to you shortly."
	msgRateLimited = "Too many reservation attempts, please wait a moment and try again."
)

// Reservation drives the booking form: per-field validation and rendering,
// draft persistence, submit-button gating and the submission workflow.
type Reservation interface {
	// Init rehydrates a previously saved draft into the form and computes
	// the initial button state.
	Init(ctx context.Context)
	// HandleFieldInput reacts to a keystroke/change on one field: validate,
	// decorate, persist the draft snapshot, recompute the button.
	HandleFieldInput(ctx context.Context, field string)
	// UpdateSubmitButtonState recomputes full-form validation and enables
	// the button iff no errors remain. It reports the resulting state and
	// leaves the button untouched while a submission is in flight.
	UpdateSubmitButtonState(ctx context.Context, initialLoad bool) bool
	// Submit runs the workflow: collect, validate, pre-confirm, create,
	// cleanup. All errors are handled here; nothing propagates.
	Submit(ctx context.Context) State
}

type serviceImpl struct {
	form    view.Form
	dialog  view.Dialog
	store   store.Draft
	api     bookingapi.Contact
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Reservation

	mu       sync.Mutex
	inFlight bool
}

func New(form view.Form, dialog view.Dialog, draftStore store.Draft, api bookingapi.Contact, cfg *config.Config, ot otel.Otel, m *metrics.Reservation) Reservation {
	return &serviceImpl{
		form:    form,
		dialog:  dialog,
		store:   draftStore,
		api:     api,
		cfg:     cfg,
		otel:    ot,
		metrics: m,
	}
}

func (s *serviceImpl) Init(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Init")
	defer scope.End()

	draft, found, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservation draft, starting from defaults")
	}

	if found {
		for _, field := range model.AllFields() {
			// The consent checkbox is restored explicitly through its
			// "true"/"false" rendering, like every other field.
			s.form.SetFieldValue(field, draft.Value(field))
		}

		s.metrics.ObserveDraftRestore()
		scope.AddEvent("Draft restored from storage")
	}

	s.form.SetButtonLabel(buttonLabelDefault)
	s.UpdateSubmitButtonState(ctx, true)
}

func (s *serviceImpl) HandleFieldInput(ctx context.Context, field string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleFieldInput")
	defer scope.End()

	scope.SetAttribute("form.field", field)

	value := s.form.FieldValue(field)

	if err := validation.Field(field, value, timezone.Now(), false); err != nil {
		s.form.SetFieldError(field, err.Error())
		s.metrics.ObserveFieldError(field)
	} else if strings.TrimSpace(value) != constant.Empty {
		s.form.SetFieldValid(field)
	} else {
		// Empty optional input stays neutral.
		s.form.SetFieldError(field, constant.Empty)
	}

	if err := s.store.Save(ctx, s.collect()); err != nil {
		log.Error().Err(err).Msg("failed to persist reservation draft")
	}

	s.UpdateSubmitButtonState(ctx, false)
}

func (s *serviceImpl) UpdateSubmitButtonState(ctx context.Context, initialLoad bool) bool {
	if s.submitting() {
		// A submission owns the button (label and disabled state) until it
		// finishes.
		return false
	}

	draft := s.collect()
	errs := validation.All(draft, timezone.Now(), true)
	enabled := len(errs) == 0

	if initialLoad {
		// After rehydration, show the positive marker on fields the user
		// already filled in correctly; leave everything else neutral.
		for _, field := range model.Fields {
			if _, bad := errs[field]; bad {
				continue
			}

			if draft.Value(field) != constant.Empty && draft.Value(field) != "false" {
				s.form.SetFieldValid(field)
			}
		}
	}

	s.form.SetButtonEnabled(enabled)

	return enabled
}

func (s *serviceImpl) Submit(ctx context.Context) State {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		log.Warn().Msg("submission already in flight, ignoring submit")

		return StateIdle
	}
	s.inFlight = true
	s.mu.Unlock()

	state := StateValidating

	// Runs on every exit: the guard flag is released, the button label is
	// restored and the form is never left stuck in a disabled state.
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()

		s.form.SetButtonLabel(buttonLabelDefault)

		if state != StateSucceeded {
			s.form.SetButtonEnabled(true)
		}

		s.metrics.ObserveSubmission(string(state))
	}()

	s.form.SetButtonEnabled(false)
	s.form.SetButtonLabel(buttonLabelSending)

	draft := s.collect()

	if errs := validation.All(draft, timezone.Now(), true); len(errs) > 0 {
		for _, field := range model.AllFields() {
			if err, bad := errs[field]; bad {
				s.form.SetFieldError(field, err.Error())
				s.metrics.ObserveFieldError(field)
			} else {
				s.form.SetFieldError(field, constant.Empty)
			}
		}

		s.dialog.Notify(msgValidation, view.KindError)
		scope.AddEvent("Submission rejected by full-form validation")

		state = StateIdle

		return state
	}

	state = StatePreConfirming
	s.form.Close()

	confirmed, err := s.dialog.Confirm(ctx, confirmTitle, summary(draft))
	if err != nil {
		log.Error().Err(err).Msg("confirmation dialog failed, treating as cancel")
	}

	if err != nil || !confirmed {
		s.reopen(ctx, draft)
		scope.AddEvent("Submission cancelled at pre-confirmation")

		state = StateCancelled

		return state
	}

	state = StateSubmitting
	s.dialog.Loading(msgSending)

	req := dto.FromDraft(draft, s.cfg.Form.PhonePrefix, timezone.Now())

	if err := s.api.CreateReservation(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("booking API rejected the reservation")

		msg := err.Error()
		if failure.GetCode(err) == http.StatusTooManyRequests {
			msg = msgRateLimited
		}

		s.dialog.Notify(msg, view.KindError)

		state = StateFailed

		return state
	}

	s.form.Reset()

	for _, field := range model.AllFields() {
		s.form.SetFieldError(field, constant.Empty)
	}

	if err := s.store.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear reservation draft after submission")
	}

	if err := s.dialog.Inform(ctx, successTitle, msgSuccess+"\n\n"+summary(draft)); err != nil {
		log.Error().Err(err).Msg("failed to show success summary")
	}

	s.form.Close()
	scope.AddEvent("Reservation " + req.ID + " submitted")

	state = StateSucceeded

	return state
}

// collect snapshots the current form values into a draft.
func (s *serviceImpl) collect() model.Draft {
	var draft model.Draft

	for _, field := range model.AllFields() {
		draft.SetValue(field, s.form.FieldValue(field))
	}

	return draft
}

func (s *serviceImpl) submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inFlight
}

// reopen brings the input modal back after a cancelled pre-confirmation,
// keeping the typed values and the original service, and filling empty
// contact fields from the signed-in user's profile when one exists.
func (s *serviceImpl) reopen(ctx context.Context, draft model.Draft) {
	s.form.Open()

	profile, found, err := s.api.LoadUser(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user profile")

		return
	}

	if !found {
		return
	}

	prefill := map[string]string{
		model.FieldName:    profile.Name,
		model.FieldEmail:   profile.Email,
		model.FieldPhone:   profile.Phone,
		model.FieldAddress: profile.Address,
	}

	for field, value := range prefill {
		if draft.Value(field) == constant.Empty && value != constant.Empty {
			s.form.SetFieldValue(field, value)
		}
	}
}

// summary renders the draft for the pre-confirmation and success dialogs.
func summary(d model.Draft) string {
	lines := []string{
		"Service: " + d.ServiceName + " (" + d.ServiceCategory + ")",
		"Name: " + d.Name,
		"Email: " + d.Email,
	}

	if d.Phone != constant.Empty {
		lines = append(lines, "Phone: "+d.Phone)
	}

	lines = append(lines,
		"Date: "+d.Date,
		"Frequency: "+d.Frequency,
		"Address: "+d.Address,
	)

	if d.Message != constant.Empty {
		lines = append(lines, "Message: "+truncate(d.Message, 200))
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}
