package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SalesOrder struct {
	Repo[models.SalesOrder]
}

func NewSalesOrder(db *gorm.DB) *SalesOrder {
	return &SalesOrder{
		Repo: NewRepo[models.SalesOrder](db),
	}
}

// FindByPhone 真实姓名优先, 其次按下单时间倒序
func (s *SalesOrder) FindByPhone(ctx context.Context, phone string, limit int) ([]*models.SalesOrder, error) {
	orders := make([]*models.SalesOrder, 0)
	err := s.Db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN customer_name IS NULL OR TRIM(customer_name) = '' OR customer_name = ? THEN 0 ELSE 1 END DESC, created_at DESC",
			Vars:               []any{models.WalkInCustomerName},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
