// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierkado/boutique-backend/internal/apperrors"
	"github.com/atelierkado/boutique-backend/internal/models"
)

func newVariant(price string) *models.Product {
	return &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Kind:      models.ProductKindTShirt,
		Name:      "Tee",
		Price:     decimal.RequireFromString(price),
	}
}

func TestBuildOrderLinesTotals(t *testing.T) {
	p1 := newVariant("24.99")
	p2 := newVariant("19.99")
	byID := map[uuid.UUID]*models.Product{p1.ID: p1, p2.ID: p2}

	items, total, err := BuildOrderLines(byID, []OrderLineRequest{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("49.98")), "got %s", items[0].Price)
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("19.99")), "got %s", items[1].Price)
	assert.True(t, total.Equal(decimal.RequireFromString("69.97")), "got %s", total)
}

func TestBuildOrderLinesUnresolvedVariantFailsWhole(t *testing.T) {
	p1 := newVariant("24.99")
	byID := map[uuid.UUID]*models.Product{p1.ID: p1}

	items, _, err := BuildOrderLines(byID, []OrderLineRequest{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: uuid.New(), Quantity: 3},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Nil(t, items)
}

func TestBuildOrderLinesRejectsZeroQuantity(t *testing.T) {
	p1 := newVariant("9.99")
	byID := map[uuid.UUID]*models.Product{p1.ID: p1}

	_, _, err := BuildOrderLines(byID, []OrderLineRequest{
		{ProductID: p1.ID, Quantity: 0},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestBuildOrderLinesSnapshotsPriceAtBuildTime(t *testing.T) {
	p1 := newVariant("24.99")
	byID := map[uuid.UUID]*models.Product{p1.ID: p1}

	items, total, err := BuildOrderLines(byID, []OrderLineRequest{
		{ProductID: p1.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// A later price change on the variant must not move the stored line.
	p1.Price = decimal.RequireFromString("99.99")

	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("24.99")))
	assert.True(t, total.Equal(decimal.RequireFromString("24.99")))
}
