package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
)

type Customer struct {
	Repo[models.Customer]
}

func NewCustomer(db *gorm.DB) *Customer {
	return &Customer{
		Repo: NewRepo[models.Customer](db),
	}
}

// FindActiveByPhone 手机号查询启用中的客户
func (c *Customer) FindActiveByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := c.Db.WithContext(ctx).
		Where("phone = ? AND is_active = ?", phone, true).
		Order("id ASC").
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Customer) FindActiveById(ctx context.Context, id uint64) (*models.Customer, error) {
	return c.Repo.FindByWhere(ctx, "id = ? AND is_active = ?", id, true)
}

func (c *Customer) ListActive(ctx context.Context) ([]*models.Customer, error) {
	return c.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("full_name ASC").Order("id ASC")
	})
}

// IsPhoneTaken 包含已停用客户, excludeID 为 0 时不排除
func (c *Customer) IsPhoneTaken(ctx context.Context, phone string, excludeID uint64) (bool, error) {
	if excludeID == 0 {
		return c.Repo.IsExist(ctx, "phone = ?", phone)
	}
	return c.Repo.IsExist(ctx, "phone = ? AND id <> ?", phone, excludeID)
}
