package kv_test

import (
	"context"
	"testing"

	"github.com/petshopapp/petshop-go/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	t.Run("Load Before Save Reports Absent", func(t *testing.T) {
		data, found, err := store.Load(ctx, "cart:missing")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("Round Trip", func(t *testing.T) {
		payload := []byte(`[{"product_id":7,"quantity":3}]`)

		require.NoError(t, store.Save(ctx, "cart:123", payload))

		data, found, err := store.Load(ctx, "cart:123")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload, data)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart:123", []byte("first")))
		require.NoError(t, store.Save(ctx, "cart:123", []byte("second")))

		data, found, err := store.Load(ctx, "cart:123")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("Save Copies The Value", func(t *testing.T) {
		payload := []byte("original")

		require.NoError(t, store.Save(ctx, "cart:copy", payload))

		payload[0] = 'X'

		data, _, err := store.Load(ctx, "cart:copy")

		require.NoError(t, err)
		assert.Equal(t, []byte("original"), data, "a later caller mutation must not reach the stored blob")
	})
}
