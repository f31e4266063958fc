package dao

import (
	"Backoffice/models"
	"context"

	"gorm.io/gorm"
)

type Role struct {
	Repo[models.Role]
}

func NewRole(db *gorm.DB) *Role {
	return &Role{
		Repo: NewRepo[models.Role](db),
	}
}

func (r *Role) RoleNamesByUser(ctx context.Context, userID uint64) ([]string, error) {
	names := make([]string, 0)
	err := r.Db.WithContext(ctx).
		Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name ASC").
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Role) FirstOrCreateByName(ctx context.Context, name, description string) (*models.Role, error) {
	// 结构体条件才会在创建时写回字段
	role := &models.Role{}
	err := r.Db.WithContext(ctx).
		Where(models.Role{Name: name}).
		Attrs(models.Role{Description: description}).
		FirstOrCreate(role).Error
	if err != nil {
		return nil, err
	}
	return role, nil
}
