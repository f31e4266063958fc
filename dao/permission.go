package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
)

type Permission struct {
	Repo[models.Permission]
}

func NewPermission(db *gorm.DB) *Permission {
	return &Permission{
		Repo: NewRepo[models.Permission](db),
	}
}

func (p *Permission) ListOrdered(ctx context.Context) ([]*models.Permission, error) {
	return p.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("resource ASC").Order("action ASC")
	})
}

// ListByUser 用户所有角色关联的权限
func (p *Permission) ListByUser(ctx context.Context, userID uint64) ([]*models.Permission, error) {
	items := make([]*models.Permission, 0)
	err := p.Db.WithContext(ctx).
		Distinct("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("permissions.resource ASC").
		Order("permissions.action ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FirstOrCreate 按 (resource, action) 幂等写入
func (p *Permission) FirstOrCreate(ctx context.Context, perm *models.Permission) error {
	return p.Db.WithContext(ctx).
		Where(models.Permission{Resource: perm.Resource, Action: perm.Action}).
		Attrs(models.Permission{Name: perm.Name, Description: perm.Description}).
		FirstOrCreate(perm).Error
}
