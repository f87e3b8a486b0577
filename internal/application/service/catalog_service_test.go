package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

func TestListByKindIsCached(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo)

	_, err := svc.CreateItem(context.Background(), &CatalogItemInput{
		Kind: enum.CatalogAccessory, Label: "Safety kit", Active: true,
	})
	require.NoError(t, err)

	first, err := svc.ListByKind(context.Background(), enum.CatalogAccessory)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCalls)

	// Second read is served from cache
	second, err := svc.ListByKind(context.Background(), enum.CatalogAccessory)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestWritesInvalidateCache(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo)

	item, err := svc.CreateItem(context.Background(), &CatalogItemInput{
		Kind: enum.CatalogColor, Label: "Rosso Corsa", Active: true,
	})
	require.NoError(t, err)

	_, err = svc.ListByKind(context.Background(), enum.CatalogColor)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	_, err = svc.UpdateItem(context.Background(), item.ID, &CatalogItemInput{
		Kind: enum.CatalogColor, Label: "Rosso Amore", Active: true,
	})
	require.NoError(t, err)

	items, err := svc.ListByKind(context.Background(), enum.CatalogColor)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	require.Len(t, items, 1)
	assert.Equal(t, "Rosso Amore", items[0].Label)
}

func TestListByKindRejectsUnknownKind(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())

	_, err := svc.ListByKind(context.Background(), enum.CatalogKind("engine"))
	assert.Error(t, err)
}

func TestListAllCoversEveryKind(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(enum.Kinds()))
}
