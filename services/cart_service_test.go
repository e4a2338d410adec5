package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickshop/models"
	"quickshop/repositories"
)

func newCartFixture(t *testing.T) (*CartService, *repositories.InMemoryProductStore) {
	t.Helper()
	products := repositories.NewInMemoryProductStore()
	carts := repositories.NewInMemoryCartStore()
	return NewCartService(carts, products), products
}

func seedProduct(t *testing.T, store *repositories.InMemoryProductStore, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Description: name, Price: price, Stock: 100}
	require.NoError(t, store.Create(context.Background(), p))
	return p
}

func TestAddItemMergesQuantities(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "espresso beans", 12.50)

	first, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddItem(ctx, 1, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "adding the same product must not create a second line")
	assert.Equal(t, 5, second.Quantity)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "filter paper", 3.00)

	_, err := svc.AddItem(ctx, 1, p.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, 1, p.ID, -4)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestUpdateItemSetsExactQuantity(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "grinder", 89.99)

	line, err := svc.AddItem(ctx, 1, p.ID, 7)
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, 1, line.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity, "update is an absolute set, not an increment")
}

func TestUpdateItemRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "kettle", 45.00)

	line, err := svc.AddItem(ctx, 1, p.ID, 3)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, 1, line.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = svc.UpdateItem(ctx, 1, line.ID, -1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity, "a rejected update must leave the line unchanged")
}

func TestUpdateItemOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "mug", 8.00)

	line, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, 2, line.ID, 5)
	assert.ErrorIs(t, err, models.ErrLineNotFound, "another user's line id must behave like a missing one")

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestRemoveItemOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "scale", 25.00)

	_, err := svc.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, 2, p.ID)
	assert.ErrorIs(t, err, models.ErrLineNotFound)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestRemoveItemEmptyCart(t *testing.T) {
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "dripper", 15.00)

	err := svc.RemoveItem(context.Background(), 1, p.ID)
	assert.ErrorIs(t, err, models.ErrLineNotFound)
}

func TestViewCartUsesCurrentPrice(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "server", 20.00)

	_, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 40.00, view.TotalPrice, 1e-9)

	p.Price = 25.00
	require.NoError(t, products.Update(ctx, p))

	view, err = svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 25.00, view.Items[0].UnitPrice, 1e-9, "price must be read at view time, not frozen at add time")
	assert.InDelta(t, 50.00, view.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, 50.00, view.TotalPrice, 1e-9)
}

func TestViewCartSkipsOrphanedLines(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	kept := seedProduct(t, products, "tamper", 30.00)
	removed := seedProduct(t, products, "discontinued", 5.00)

	_, err := svc.AddItem(ctx, 1, kept.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, removed.ID, 4)
	require.NoError(t, err)

	require.NoError(t, products.Deactivate(ctx, removed.ID))

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, kept.ID, view.Items[0].ProductID)
	assert.Equal(t, 1, view.Skipped)
	assert.InDelta(t, 30.00, view.TotalPrice, 1e-9)
}

func TestCartScenario(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "v60", 10.00)

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalPrice)

	_, err = svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	view, err = svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, p.ID, view.Items[0].ProductID)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.InDelta(t, 20.00, view.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, view.Items[0].LineTotal, view.TotalPrice, 1e-9)

	_, err = svc.AddItem(ctx, 1, p.ID, 3)
	require.NoError(t, err)

	view, err = svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc, products := newCartFixture(t)
	p := seedProduct(t, products, "shared product", 9.99)

	_, err := svc.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 2, p.ID, 6)
	require.NoError(t, err)

	viewA, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	viewB, err := svc.ViewCart(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, viewA.Items[0].Quantity)
	assert.Equal(t, 6, viewB.Items[0].Quantity)
}
