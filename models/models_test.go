package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSalesOrderHasRealName(t *testing.T) {
	assert.True(t, (&SalesOrder{CustomerName: "Jane Doe"}).HasRealName())
	assert.False(t, (&SalesOrder{CustomerName: WalkInCustomerName}).HasRealName())
	assert.False(t, (&SalesOrder{CustomerName: "  walk-in customer "}).HasRealName())
	assert.False(t, (&SalesOrder{CustomerName: "   "}).HasRealName())
}

func TestSalesOrderToCustomer(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o := &SalesOrder{ID: 9, CustomerName: "Jane", CustomerPhone: "555", CustomerEmail: ptr("j@x.io"), CreatedAt: created}

	c := o.ToCustomer()
	assert.Zero(t, c.ID)
	assert.Equal(t, "Jane", c.FullName)
	assert.Equal(t, "555", c.Phone)
	assert.Equal(t, "j@x.io", *c.Email)
	assert.Nil(t, c.Address)
	assert.True(t, c.IsActive)
	assert.Equal(t, created, c.CreatedAt)
}

func TestEffectivePriceAndImage(t *testing.T) {
	product := &Product{Price: 19.99, ImageURL: "base.png"}

	testCases := []struct {
		name    string
		variant *ProductVariant
		price   float64
		image   string
	}{
		{name: "no variant", variant: nil, price: 19.99, image: "base.png"},
		{name: "variant overrides", variant: &ProductVariant{Price: ptr(9.99), ImageURL: ptr("v.png")}, price: 9.99, image: "v.png"},
		{name: "variant without overrides", variant: &ProductVariant{}, price: 19.99, image: "base.png"},
		{name: "empty variant image", variant: &ProductVariant{Price: ptr(0.0), ImageURL: ptr(" ")}, price: 0, image: "base.png"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.price, EffectivePrice(product, tc.variant))
			assert.Equal(t, tc.image, EffectiveImage(product, tc.variant))
		})
	}
}
