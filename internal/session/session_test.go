package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisync-api/internal/model"
)

func newStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewStore(client, ttl)
}

func TestCreateGetDelete(t *testing.T) {
	_, st := newStore(t, time.Hour)
	ctx := context.Background()

	sess := &Session{UserID: 11, RoleID: 7, Role: model.RolePatient, Email: "jane@example.com"}
	require.NoError(t, st.Create(ctx, sess))
	require.NotEmpty(t, sess.ID)

	got, err := st.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.UserID)
	assert.Equal(t, int64(7), got.RoleID)
	assert.Equal(t, model.RolePatient, got.Role)

	require.NoError(t, st.Delete(ctx, sess.ID))
	_, err = st.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// second sign-out is harmless
	require.NoError(t, st.Delete(ctx, sess.ID))
}

func TestSessionExpires(t *testing.T) {
	mr, st := newStore(t, time.Minute)
	ctx := context.Background()

	sess := &Session{UserID: 1, RoleID: 1, Role: model.RoleDoctor}
	require.NoError(t, st.Create(ctx, sess))
	assert.Equal(t, time.Minute, mr.TTL(key(sess.ID)))

	mr.FastForward(2 * time.Minute)
	_, err := st.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCorruptSession(t *testing.T) {
	mr, st := newStore(t, time.Hour)
	require.NoError(t, mr.Set(key("bad"), "{not json"))

	_, err := st.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
