package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := &Cart{UserID: 1}

	cart.AddItem(10, "Polo Shirt", 2, decimal.NewFromFloat(59.99))
	cart.AddItem(10, "Polo Shirt", 3, decimal.NewFromFloat(62.00))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	// 单价保留首次加入时的值
	assert.Equal(t, "59.99", cart.Items[0].Price.StringFixed(2))
}

func TestCart_Recalculate_FlatShippingBelowThreshold(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.AddItem(10, "Polo Shirt", 1, decimal.NewFromFloat(59.99))

	assert.Equal(t, "59.99", cart.ItemsPrice.StringFixed(2))
	assert.Equal(t, "10.00", cart.ShippingPrice.StringFixed(2))
	assert.Equal(t, "9.00", cart.TaxPrice.StringFixed(2))
	assert.Equal(t, "78.99", cart.TotalPrice.StringFixed(2))
}

func TestCart_Recalculate_FreeShippingAtThreshold(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.AddItem(10, "Polo Shirt", 2, decimal.NewFromFloat(50.00))

	assert.Equal(t, "100.00", cart.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", cart.ShippingPrice.StringFixed(2))
	assert.Equal(t, "15.00", cart.TaxPrice.StringFixed(2))
	assert.Equal(t, "115.00", cart.TotalPrice.StringFixed(2))
}

func TestCart_RemoveItem_Recalculates(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.AddItem(10, "Polo Shirt", 1, decimal.NewFromFloat(59.99))
	cart.AddItem(11, "Oxford Shirt", 1, decimal.NewFromFloat(79.99))

	cart.RemoveItem(11)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "59.99", cart.ItemsPrice.StringFixed(2))
	assert.Equal(t, "10.00", cart.ShippingPrice.StringFixed(2))
}

func TestCart_Clear_ZeroesAllTotals(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.AddItem(10, "Polo Shirt", 2, decimal.NewFromFloat(59.99))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00", cart.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", cart.ShippingPrice.StringFixed(2))
	assert.Equal(t, "0.00", cart.TaxPrice.StringFixed(2))
	assert.Equal(t, "0.00", cart.TotalPrice.StringFixed(2))
}

func TestCart_Recalculate_RoundsTaxToTwoDecimals(t *testing.T) {
	cart := &Cart{UserID: 1}
	// 33.33 * 0.15 = 4.9995 -> 5.00
	cart.AddItem(10, "Polo Shirt", 1, decimal.NewFromFloat(33.33))

	assert.Equal(t, "5.00", cart.TaxPrice.StringFixed(2))
	assert.Equal(t, "48.33", cart.TotalPrice.StringFixed(2))
}
