package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cohera-backend/internal/models"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisStore(rdb, ttl), mr
}

func testSession() models.Session {
	return models.Session{
		UserID:    7,
		OrgID:     10,
		Role:      models.RoleMember,
		FullName:  "Rae Rivera",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateAndGetRoundtrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, testSession())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, int64(10), got.OrgID)
	assert.Equal(t, models.RoleMember, got.Role)
	assert.Equal(t, "Rae Rivera", got.FullName)
	assert.True(t, got.CreatedAt.Equal(testSession().CreatedAt))
}

func TestGetIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, testSession())
	require.NoError(t, err)

	first, err := store.Get(ctx, token)
	require.NoError(t, err)
	second, err := store.Get(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDestroy(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, testSession())
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Destroying again is a no-op.
	assert.NoError(t, store.Destroy(ctx, token))
}

func TestDestroyLeavesOtherSessionsAlone(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, testSession())
	require.NoError(t, err)

	other := testSession()
	other.UserID = 8
	second, err := store.Create(ctx, other)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, store.Destroy(ctx, first))

	got, err := store.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.UserID)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, testSession())
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
