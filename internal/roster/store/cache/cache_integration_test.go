//go:build integration

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollbook/internal/platform/redis"
	"rollbook/internal/roster/filter"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/store/cache"
	"rollbook/pkg/testutil/containers"
)

func TestViewCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	redisContainer := containers.NewRedisContainer(t)

	client, err := redis.New(ctx, redisContainer.URL)
	require.NoError(t, err)
	defer client.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	viewCache := cache.New(client, time.Minute, logger)
	require.NotNil(t, viewCache)

	records := []filter.Record{
		{
			Person:     models.Person{FirstName: "Johnny", LastName: "Depp", Role: models.RoleTeacher},
			SchoolName: "Northgate High",
			ClassNames: []string{"Mathematics"},
		},
	}

	t.Run("miss before set", func(t *testing.T) {
		_, ok := viewCache.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		viewCache.Set(ctx, records)
		got, ok := viewCache.Get(ctx)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Depp", got[0].Person.LastName)
		assert.Equal(t, "Northgate High", got[0].SchoolName)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		viewCache.Set(ctx, records)
		viewCache.Invalidate(ctx)
		_, ok := viewCache.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		shortCache := cache.New(client, 50*time.Millisecond, logger)
		shortCache.Set(ctx, records)
		time.Sleep(100 * time.Millisecond)
		_, ok := shortCache.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("nil client disables caching", func(t *testing.T) {
		assert.Nil(t, cache.New(nil, time.Minute, logger))
	})
}
