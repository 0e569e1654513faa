package kv_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/petshopapp/petshop-go/internal/kv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (kv.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return kv.NewRedisStore(client), mock
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cart:0566699305", kv.Key(kv.CartKeyPrefix, "0566699305"))
	assert.Equal(t, "cart:", kv.Key(kv.CartKeyPrefix, ""), "anonymous owners still get a deterministic key")
}

func TestRedisSave(t *testing.T) {
	ctx := context.Background()
	testKey := "cart:0566699305"
	payload := []byte(`[{"product_id":1,"quantity":2}]`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		mock.ExpectSet(testKey, payload, 0).SetVal("OK")

		// Act
		err := store.Save(ctx, testKey, payload)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		expectedErr := errors.New("redis connection error")

		mock.ExpectSet(testKey, payload, 0).SetErr(expectedErr)

		// Act
		err := store.Save(ctx, testKey, payload)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to set key %s in redis", testKey))
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestRedisLoad(t *testing.T) {
	ctx := context.Background()
	testKey := "cart:0566699305"
	payload := `[{"product_id":1,"quantity":2}]`

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		mock.ExpectGet(testKey).SetVal(payload)

		// Act
		data, found, err := store.Load(ctx, testKey)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(payload), data)
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Success - Key Absent", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		// Act
		data, found, err := store.Load(ctx, testKey)

		// Assert
		require.NoError(t, err, "absence is not an error")
		assert.False(t, found)
		assert.Nil(t, data)
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		expectedErr := errors.New("redis connection error")

		mock.ExpectGet(testKey).SetErr(expectedErr)

		// Act
		_, found, err := store.Load(ctx, testKey)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}
