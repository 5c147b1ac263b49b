package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resa/config"
	"resa/infras/otel"
	"resa/infras/otel/mocks"
	"resa/internal/domains/reservation/model"
	"resa/internal/domains/reservation/store"
	"resa/shared/constant"
)

// recordingScope captures what the tracing scope is told, so tests can assert
// that failures surfacing through named returns reach the span.
type recordingScope struct {
	traced []error
}

func (s *recordingScope) End()                        {}
func (s *recordingScope) TraceError(err error)        { s.traced = append(s.traced, err) }
func (s *recordingScope) AddEvent(_ string)           {}
func (s *recordingScope) SetAttribute(_ string, _ any) {}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

type recordingOtel struct {
	scope *recordingScope
}

func (o *recordingOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

func newTestStore(t *testing.T) (store.Draft, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}

	return store.New(client, cfg, mocks.NewOtel()), mr
}

func TestDraftRoundTrip(t *testing.T) {
	draftStore, _ := newTestStore(t)
	ctx := context.Background()

	draft := model.Draft{
		Name:            "Jean Dupont",
		Email:           "jean@example.com",
		Phone:           "612345678",
		Date:            "2026-09-01T09:00",
		Frequency:       "weekly",
		Address:         "12 rue de Paris",
		Message:         "second floor",
		Consent:         true,
		ServiceID:       "svc1",
		ServiceName:     "Ménage",
		ServiceCategory: "cleaning",
	}

	require.NoError(t, draftStore.Save(ctx, draft))

	loaded, found, err := draftStore.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, draft, loaded)
}

func TestLoadMissingDraft(t *testing.T) {
	draftStore, _ := newTestStore(t)

	loaded, found, err := draftStore.Load(context.Background())

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, model.Draft{}, loaded)
}

func TestLoadMalformedDraft(t *testing.T) {
	draftStore, mr := newTestStore(t)

	require.NoError(t, mr.Set(constant.StorageKeyReservationForm, "{not json"))

	loaded, found, err := draftStore.Load(context.Background())

	assert.NoError(t, err, "malformed drafts are ignored, not surfaced")
	assert.False(t, found)
	assert.Equal(t, model.Draft{}, loaded)
}

func TestClearDraft(t *testing.T) {
	draftStore, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, draftStore.Save(ctx, model.Draft{Name: "Jean"}))
	require.True(t, mr.Exists(constant.StorageKeyReservationForm))

	require.NoError(t, draftStore.Clear(ctx))

	assert.False(t, mr.Exists(constant.StorageKeyReservationForm))

	_, found, err := draftStore.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSaveFailureIsTraced(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	scope := &recordingScope{}
	draftStore := store.New(client, &config.Config{}, &recordingOtel{scope: scope})

	mr.Close()

	err := draftStore.Save(context.Background(), model.Draft{Name: "Jean"})

	require.Error(t, err)
	require.Len(t, scope.traced, 1, "the span must record the save failure")
	assert.Equal(t, err, scope.traced[0])
}

func TestSaveAppliesConfiguredTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Form.DraftTTLSeconds = 60

	draftStore := store.New(client, cfg, mocks.NewOtel())

	require.NoError(t, draftStore.Save(context.Background(), model.Draft{Name: "Jean"}))
	assert.Greater(t, mr.TTL(constant.StorageKeyReservationForm), time.Duration(0))
}
