//go:build unit

package bundle_test

import (
	"testing"

	"trainhub/internal/domain/bundle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() bundle.ProductList {
	return bundle.ProductList{
		{RemoteRef: 1, Name: "Protein", Quantity: 2, UnitPrice: decimal.NewFromInt(35)},
		{RemoteRef: 2, Name: "Bands", Quantity: 1, UnitPrice: decimal.NewFromInt(19)},
	}
}

func TestProductListSetQuantity(t *testing.T) {
	cases := []struct {
		name  string
		ref   int64
		qty   int32
		errIs error
	}{
		{name: "minimum quantity", ref: 1, qty: 1},
		{name: "maximum quantity", ref: 1, qty: 100},
		{name: "zero quantity", ref: 1, qty: 0, errIs: bundle.ErrInvalidQuantity},
		{name: "above maximum", ref: 1, qty: 101, errIs: bundle.ErrInvalidQuantity},
		{name: "unknown ref", ref: 99, qty: 5, errIs: bundle.ErrComponentNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := testProducts()
			err := l.SetQuantity(tc.ref, tc.qty)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.qty, l[0].Quantity)
		})
	}
}

func TestProductListAdd(t *testing.T) {
	t.Run("appends new item", func(t *testing.T) {
		l, err := testProducts().Add(bundle.ProductItem{RemoteRef: 3, Name: "Shaker", Quantity: 1, UnitPrice: decimal.NewFromInt(9)})
		require.NoError(t, err)
		require.Len(t, l, 3)
		assert.Equal(t, int64(3), l[2].RemoteRef)
	})

	t.Run("merges existing ref by summing quantities", func(t *testing.T) {
		l, err := testProducts().Add(bundle.ProductItem{RemoteRef: 1, Name: "Protein", Quantity: 3, UnitPrice: decimal.NewFromInt(35)})
		require.NoError(t, err)
		require.Len(t, l, 2)
		assert.Equal(t, int32(5), l[0].Quantity)
	})

	t.Run("merge above maximum fails", func(t *testing.T) {
		_, err := testProducts().Add(bundle.ProductItem{RemoteRef: 1, Name: "Protein", Quantity: 99, UnitPrice: decimal.NewFromInt(35)})
		assert.ErrorIs(t, err, bundle.ErrInvalidQuantity)
	})

	t.Run("invalid item is rejected", func(t *testing.T) {
		_, err := testProducts().Add(bundle.ProductItem{RemoteRef: 3, Name: "  ", Quantity: 1, UnitPrice: decimal.NewFromInt(9)})
		assert.ErrorIs(t, err, bundle.ErrEmptyItemName)
	})
}

func TestProductListRemove(t *testing.T) {
	t.Run("removes and preserves order", func(t *testing.T) {
		l, err := testProducts().Remove(1)
		require.NoError(t, err)
		require.Len(t, l, 1)
		assert.Equal(t, int64(2), l[0].RemoteRef)
	})

	t.Run("unknown ref", func(t *testing.T) {
		_, err := testProducts().Remove(99)
		assert.ErrorIs(t, err, bundle.ErrComponentNotFound)
	})
}

func TestProductListValidate(t *testing.T) {
	t.Run("duplicate remote refs", func(t *testing.T) {
		l := bundle.ProductList{
			{RemoteRef: 1, Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
			{RemoteRef: 1, Name: "B", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
		}
		assert.ErrorIs(t, l.Validate(), bundle.ErrDuplicateRemoteRef)
	})

	t.Run("negative unit price", func(t *testing.T) {
		l := bundle.ProductList{
			{RemoteRef: 1, Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)},
		}
		assert.ErrorIs(t, l.Validate(), bundle.ErrNegativeUnitPrice)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		assert.NoError(t, bundle.ProductList{}.Validate())
	})
}

func TestServiceItemValidate(t *testing.T) {
	assert.NoError(t, bundle.ServiceItem{RemoteRef: 1, Name: "Coaching", Sessions: 1}.Validate())
	assert.ErrorIs(t, bundle.ServiceItem{RemoteRef: 1, Name: "", Sessions: 1}.Validate(), bundle.ErrEmptyItemName)
	assert.ErrorIs(t, bundle.ServiceItem{RemoteRef: 1, Name: "Coaching", Sessions: 0}.Validate(), bundle.ErrInvalidQuantity)
}
