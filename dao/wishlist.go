package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
)

type Wishlist struct {
	Repo[models.Wishlist]
}

func NewWishlist(db *gorm.DB) *Wishlist {
	return &Wishlist{
		Repo: NewRepo[models.Wishlist](db),
	}
}

// ListByUser 最新收藏在前
func (w *Wishlist) ListByUser(ctx context.Context, userID uint64) ([]*models.Wishlist, error) {
	return w.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC")
	})
}

// Exists variantID 为 nil 时匹配无规格的收藏
func (w *Wishlist) Exists(ctx context.Context, userID, productID uint64, variantID *uint64) (bool, error) {
	if variantID == nil {
		return w.Repo.IsExist(ctx, "user_id = ? AND product_id = ? AND product_variant_id IS NULL", userID, productID)
	}
	return w.Repo.IsExist(ctx, "user_id = ? AND product_id = ? AND product_variant_id = ?", userID, productID, *variantID)
}

func (w *Wishlist) FindByIdAndUser(ctx context.Context, id, userID uint64) (*models.Wishlist, error) {
	return w.Repo.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}
