package models

import "time"

// Wishlist (user, product, variant) 唯一. MySQL 唯一索引不约束 NULL,
// 因此用生成列 variant_key (无规格时为 0) 参与唯一索引
type Wishlist struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID           uint64    `gorm:"not null;uniqueIndex:idx_wishlists_user_product_variant,priority:1;index:idx_wishlists_user_created,priority:1;column:user_id" json:"user_id"`
	ProductID        uint64    `gorm:"not null;uniqueIndex:idx_wishlists_user_product_variant,priority:2;column:product_id" json:"product_id"`
	ProductVariantID *uint64   `gorm:"column:product_variant_id" json:"product_variant_id"`
	VariantKey       uint64    `gorm:"->;type:bigint unsigned GENERATED ALWAYS AS (COALESCE(product_variant_id, 0)) STORED;uniqueIndex:idx_wishlists_user_product_variant,priority:3;column:variant_key" json:"-"`
	CreatedAt        time.Time `gorm:"column:created_at;index:idx_wishlists_user_created,priority:2" json:"created_at"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
