package types

import "time"

type AddWishlistItemRequest struct {
	ProductID        uint64  `json:"product_id" binding:"required"`
	ProductVariantID *uint64 `json:"product_variant_id"`
}

type CheckWishlistItemRequest struct {
	ProductID        uint64  `form:"productId" binding:"required"`
	ProductVariantID *uint64 `form:"productVariantId"`
}

type CheckWishlistItemResponse struct {
	Exists bool `json:"exists"`
}

// WishlistItemResponse Price/ImageURL 已按规格覆盖规则计算
type WishlistItemResponse struct {
	ID               uint64    `json:"id"`
	ProductID        uint64    `json:"product_id"`
	ProductVariantID *uint64   `json:"product_variant_id"`
	ProductName      string    `json:"product_name"`
	ProductSKU       string    `json:"product_sku"`
	VariantName      *string   `json:"variant_name"`
	VariantSKU       *string   `json:"variant_sku"`
	Price            float64   `json:"price"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
}
