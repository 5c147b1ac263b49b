package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"resa/config"
	"resa/infras/otel"
	"resa/internal/domains/reservation/model"
	"resa/shared/constant"
)

// Draft persists the in-progress reservation form under a single fixed key.
type Draft interface {
	Save(ctx context.Context, draft model.Draft) error
	Load(ctx context.Context) (model.Draft, bool, error)
	Clear(ctx context.Context) error
}

type redisStore struct {
	client *goRedis.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client *goRedis.Client, cfg *config.Config, ot otel.Otel) Draft {
	return &redisStore{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

// Save implements Draft. The snapshot holds the editable fields plus the
// service identifiers; derived submission-only values are never stored.
func (s *redisStore) Save(ctx context.Context, draft model.Draft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := json.Marshal(draft)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal reservation draft")

		return fmt.Errorf("failed to marshal reservation draft: %w", err)
	}

	ttl := time.Duration(s.cfg.Form.DraftTTLSeconds) * time.Second

	if err = s.client.Set(ctx, constant.StorageKeyReservationForm, payload, ttl).Err(); err != nil {
		log.Error().Err(err).Str("key", constant.StorageKeyReservationForm).Msg("failed to save reservation draft")

		return fmt.Errorf("failed to save reservation draft: %w", err)
	}

	return nil
}

// Load implements Draft. An absent or malformed entry yields the zero draft
// with ok=false and no error, so callers fall back to form defaults.
func (s *redisStore) Load(ctx context.Context) (draft model.Draft, ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := s.client.Get(ctx, constant.StorageKeyReservationForm).Result()
	if err == goRedis.Nil {
		return model.Draft{}, false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", constant.StorageKeyReservationForm).Msg("failed to load reservation draft")

		return model.Draft{}, false, fmt.Errorf("failed to load reservation draft: %w", err)
	}

	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		log.Warn().Err(err).Str("key", constant.StorageKeyReservationForm).Msg("stored reservation draft is malformed, ignoring it")

		return model.Draft{}, false, nil
	}

	return draft, true, nil
}

// Clear implements Draft.
func (s *redisStore) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.client.Del(ctx, constant.StorageKeyReservationForm).Err(); err != nil {
		log.Error().Err(err).Str("key", constant.StorageKeyReservationForm).Msg("failed to clear reservation draft")

		return fmt.Errorf("failed to clear reservation draft: %w", err)
	}

	return nil
}
