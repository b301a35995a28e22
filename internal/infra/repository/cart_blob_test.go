package repository

import (
	"context"
	"testing"

	"foodpreorder/internal/domain/model"
	"foodpreorder/internal/infra/storage"

	"github.com/stretchr/testify/assert"
)

func newFileStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	return store
}

func TestCartBlobEmptyWhenUnsaved(t *testing.T) {
	r := NewCartBlobRepository(newFileStore(t))

	lines, err := r.Load(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestCartBlobRoundTrip(t *testing.T) {
	store := newFileStore(t)
	r := NewCartBlobRepository(store)
	ctx := context.Background()

	saved := []model.CartLine{
		{ItemID: 1, Name: "Margherita Pizza", Price: 1299, Quantity: 3},
		{ItemID: 2, Name: "Garlic Bread", Price: 599, Quantity: 1},
	}
	assert.NoError(t, r.Save(ctx, saved))

	loaded, err := r.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, saved, loaded)

	//ブロブはJSON配列のまま（元のキー名で）
	data, err := store.Load(ctx, "foodCart")
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"id":1`)
}

func TestCartBlobSaveNilAsEmpty(t *testing.T) {
	r := NewCartBlobRepository(newFileStore(t))
	ctx := context.Background()

	assert.NoError(t, r.Save(ctx, nil))

	lines, err := r.Load(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestCartBlobCorruptJSON(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()
	assert.NoError(t, store.Save(ctx, "foodCart", []byte(`{broken`)))

	r := NewCartBlobRepository(store)
	_, err := r.Load(ctx)
	assert.Error(t, err)
}
