package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) FindByIds(ctx context.Context, ids []uint64) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}
	return p.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	})
}

type ProductVariant struct {
	Repo[models.ProductVariant]
}

func NewProductVariant(db *gorm.DB) *ProductVariant {
	return &ProductVariant{
		Repo: NewRepo[models.ProductVariant](db),
	}
}

// FindByIdAndProduct 规格必须属于该商品
func (v *ProductVariant) FindByIdAndProduct(ctx context.Context, id, productID uint64) (*models.ProductVariant, error) {
	return v.Repo.FindByWhere(ctx, "id = ? AND product_id = ?", id, productID)
}

func (v *ProductVariant) FindByIds(ctx context.Context, ids []uint64) ([]*models.ProductVariant, error) {
	if len(ids) == 0 {
		return []*models.ProductVariant{}, nil
	}
	return v.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	})
}
