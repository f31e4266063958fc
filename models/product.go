package models

import (
	"strings"
	"time"
)

// Product 商品, Price/ImageURL 为默认展示值
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null;column:name" json:"name"`
	SKU         string    `gorm:"size:100;not null;uniqueIndex:idx_products_sku;column:sku" json:"sku"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Price       float64   `gorm:"type:decimal(18,2);not null;default:0;column:price" json:"price"`
	ImageURL    string    `gorm:"size:512;default:'';column:image_url" json:"image_url"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductVariant 规格, Price/ImageURL 非空时覆盖商品默认值
type ProductVariant struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID uint64    `gorm:"not null;index:idx_product_variants_product_id;column:product_id" json:"product_id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	SKU       string    `gorm:"size:100;not null;uniqueIndex:idx_product_variants_sku;column:sku" json:"sku"`
	Price     *float64  `gorm:"type:decimal(18,2);column:price" json:"price"`
	ImageURL  *string   `gorm:"size:512;column:image_url" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func EffectivePrice(p *Product, v *ProductVariant) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}
	if p == nil {
		return 0
	}
	return p.Price
}

func EffectiveImage(p *Product, v *ProductVariant) string {
	if v != nil && v.ImageURL != nil && strings.TrimSpace(*v.ImageURL) != "" {
		return *v.ImageURL
	}
	if p == nil {
		return ""
	}
	return p.ImageURL
}
