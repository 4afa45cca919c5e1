// Package session keeps resolved sessions in Redis. A session maps a signed-in
// identity to its user row, role and role-table id, and lives until sign-out or
// its TTL expires.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"medisync-api/internal/model"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	RoleID    int64      `json:"role_id"`
	Role      model.Role `json:"role"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
}

type Store struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	return &Store{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("medisync.internal.session"),
	}
}

func (s *Store) TTL() time.Duration { return s.ttl }

// Create assigns a fresh id and persists the session.
func (s *Store) Create(ctx context.Context, sess *Session) error {
	ctx, span := s.tracer.Start(ctx, "session.create")
	defer span.End()

	sess.ID = uuid.NewString()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(sess)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := s.redis.Set(ctx, key(sess.ID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: persist: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.get")
	defer span.End()

	data, err := s.redis.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("session: load: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &sess, nil
}

// Delete ends a session. Deleting an unknown session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "session.delete")
	defer span.End()

	if err := s.redis.Del(ctx, key(id)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func key(id string) string {
	return fmt.Sprintf("session:%s", id)
}
