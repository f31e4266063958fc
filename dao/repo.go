package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用的单表操作, 具体 DAO 通过内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, scopes ...func(db *gorm.DB) *gorm.DB) ([]*T, error) {
	items := make([]*T, 0)
	if err := r.Db.WithContext(ctx).Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	if err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r *Repo[T]) Save(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Save(item).Error
}

func (r *Repo[T]) Delete(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Delete(item).Error
}
