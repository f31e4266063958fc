package service

import (
	"Backoffice/models"
	"Backoffice/pkg/clock"
	"Backoffice/pkg/log"
	"Backoffice/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WishlistService struct {
	WishlistDAO       WishlistRepository
	ProductDAO        ProductRepository
	ProductVariantDAO ProductVariantRepository
	Clock             clock.Nower
}

var _ IWishlistService = (*WishlistService)(nil)

//go:generate mockgen -source=wishlist.go -package service -destination wishlist_mock.go IWishlistService
type IWishlistService interface {
	ListForUser(ctx context.Context, userID uint64) ([]*types.WishlistItemResponse, error)
	AddItem(ctx context.Context, userID uint64, req *types.AddWishlistItemRequest) (*types.WishlistItemResponse, error)
	RemoveItem(ctx context.Context, userID uint64, itemID uint64) error
	CheckItem(ctx context.Context, userID uint64, productID uint64, variantID *uint64) (bool, error)
}

// ListForUser 最新收藏在前, 商品和规格分别批量加载
func (w *WishlistService) ListForUser(ctx context.Context, userID uint64) ([]*types.WishlistItemResponse, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	items, err := w.WishlistDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*types.WishlistItemResponse{}, nil
	}

	productIDs := make([]uint64, 0, len(items))
	variantIDs := make([]uint64, 0)
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		if item.ProductVariantID != nil {
			variantIDs = append(variantIDs, *item.ProductVariantID)
		}
	}

	var (
		products []*models.Product
		variants []*models.ProductVariant
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		products, err = w.ProductDAO.FindByIds(ctx, productIDs)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		variants, err = w.ProductVariantDAO.FindByIds(ctx, variantIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	productMap := make(map[uint64]*models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}
	variantMap := make(map[uint64]*models.ProductVariant, len(variants))
	for _, variant := range variants {
		variantMap[variant.ID] = variant
	}

	resp := make([]*types.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		var variant *models.ProductVariant
		if item.ProductVariantID != nil {
			variant = variantMap[*item.ProductVariantID]
		}
		resp = append(resp, toWishlistItemResponse(item, productMap[item.ProductID], variant))
	}
	return resp, nil
}

func (w *WishlistService) AddItem(ctx context.Context, userID uint64, req *types.AddWishlistItemRequest) (*types.WishlistItemResponse, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	product, err := w.ProductDAO.FindById(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var variant *models.ProductVariant
	if req.ProductVariantID != nil {
		variant, err = w.ProductVariantDAO.FindByIdAndProduct(ctx, *req.ProductVariantID, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVariantNotFound
			}
			return nil, err
		}
	}

	exists, err := w.WishlistDAO.Exists(ctx, userID, req.ProductID, req.ProductVariantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrWishlistConflict
	}

	item := &models.Wishlist{
		UserID:           userID,
		ProductID:        req.ProductID,
		ProductVariantID: req.ProductVariantID,
		CreatedAt:        w.Clock.Now(),
	}
	if err := w.WishlistDAO.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWishlistConflict
		}
		return nil, err
	}

	saved, err := w.WishlistDAO.FindByIdAndUser(ctx, item.ID, userID)
	if err != nil {
		return nil, err
	}
	log.L.Info("wishlist item added", zap.Uint64("user_id", userID), zap.Uint64("item_id", saved.ID))
	return toWishlistItemResponse(saved, product, variant), nil
}

func (w *WishlistService) RemoveItem(ctx context.Context, userID uint64, itemID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	item, err := w.WishlistDAO.FindByIdAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWishlistItemNotFound
		}
		return err
	}
	return w.WishlistDAO.Delete(ctx, item)
}

func (w *WishlistService) CheckItem(ctx context.Context, userID uint64, productID uint64, variantID *uint64) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthenticated
	}
	return w.WishlistDAO.Exists(ctx, userID, productID, variantID)
}

func toWishlistItemResponse(item *models.Wishlist, product *models.Product, variant *models.ProductVariant) *types.WishlistItemResponse {
	resp := &types.WishlistItemResponse{
		ID:               item.ID,
		ProductID:        item.ProductID,
		ProductVariantID: item.ProductVariantID,
		Price:            models.EffectivePrice(product, variant),
		ImageURL:         models.EffectiveImage(product, variant),
		CreatedAt:        item.CreatedAt,
	}
	if product != nil {
		resp.ProductName = product.Name
		resp.ProductSKU = product.SKU
	}
	if variant != nil {
		resp.VariantName = &variant.Name
		resp.VariantSKU = &variant.SKU
	}
	return resp
}
