package redis_test

import (
	"testing"
	"time"

	"registry/packages/infrastructure/cache/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestCacheOperations(t *testing.T) {
	// Setup test Redis server
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	// Create cache instance
	cache := redis.New()

	t.Run("Set and Get", func(t *testing.T) {
		key := "entity_by_idid:test"
		value := `{"id":"test"}`

		mr.Set(key, value)

		assert.NotNil(t, cache)

		result, err := mr.Get(key)
		assert.NoError(t, err)
		assert.Equal(t, value, result)
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		result, err := mr.Get("non-existent")
		assert.Error(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("Delete", func(t *testing.T) {
		key := "to-delete"

		mr.Set(key, "value")

		mr.Del(key)
		result, err := mr.Get(key)
		assert.Error(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("Expiration", func(t *testing.T) {
		key := "expiring-key"

		mr.Set(key, "expiring-value")
		mr.SetTTL(key, time.Second)

		result, err := mr.Get(key)
		assert.NoError(t, err)
		assert.Equal(t, "expiring-value", result)

		mr.FastForward(time.Second * 2)

		result, err = mr.Get(key)
		assert.Error(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("Cache Instance Creation", func(t *testing.T) {
		cache1 := redis.New()
		cache2 := redis.New()

		assert.NotNil(t, cache1)
		assert.NotNil(t, cache2)
		assert.NotSame(t, cache1, cache2)
	})
}
