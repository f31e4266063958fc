package service

import (
	"Backoffice/models"
	"Backoffice/pkg/log"
	"Backoffice/types"
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PermissionService struct {
	PermissionDAO PermissionRepository
	RoleDAO       RoleRepository
	Cache         PermissionCatalogCache
}

var _ IPermissionService = (*PermissionService)(nil)

//go:generate mockgen -source=permission.go -package service -destination permission_mock.go IPermissionService
type IPermissionService interface {
	ListPermissions(ctx context.Context) ([]*types.PermissionResponse, error)
	ListPermissionsByResource(ctx context.Context) (map[string][]*types.PermissionResponse, error)
	GetEffectivePermissions(ctx context.Context, userID uint64) (*types.EffectivePermissionsResponse, error)
	GetPermissionById(ctx context.Context, id uint64) (*types.PermissionResponse, error)
	SeedCatalog(ctx context.Context) (*types.SeedPermissionsResult, error)
}

func (p *PermissionService) catalog(ctx context.Context) ([]*models.Permission, error) {
	if items, ok := p.Cache.GetCatalog(ctx); ok {
		return items, nil
	}
	items, err := p.PermissionDAO.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	p.Cache.SetCatalog(ctx, items)
	return items, nil
}

// ListPermissions 按 (resource, action) 升序
func (p *PermissionService) ListPermissions(ctx context.Context) ([]*types.PermissionResponse, error) {
	items, err := p.catalog(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]*types.PermissionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toPermissionResponse(item))
	}
	return resp, nil
}

func (p *PermissionService) ListPermissionsByResource(ctx context.Context) (map[string][]*types.PermissionResponse, error) {
	items, err := p.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*types.PermissionResponse)
	for _, item := range items {
		grouped[item.Resource] = append(grouped[item.Resource], item)
	}
	return grouped, nil
}

// GetEffectivePermissions SuperAdmin 直接返回固定的全部资源操作, 不依赖 role_permissions
func (p *PermissionService) GetEffectivePermissions(ctx context.Context, userID uint64) (*types.EffectivePermissionsResponse, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	roles, err := p.RoleDAO.RoleNamesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &types.EffectivePermissionsResponse{
		UserID:      userID,
		Roles:       roles,
		Permissions: make(map[string][]string),
	}

	if slices.Contains(roles, models.RoleSuperAdmin) {
		resp.IsSuperAdmin = true
		for _, resource := range models.Resources {
			resp.Permissions[resource] = slices.Clone(models.Actions)
		}
		return resp, nil
	}

	perms, err := p.PermissionDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	type pair struct{ resource, action string }
	seen := make(map[pair]struct{}, len(perms))
	for _, perm := range perms {
		key := pair{perm.Resource, perm.Action}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		resp.Permissions[perm.Resource] = append(resp.Permissions[perm.Resource], perm.Action)
	}
	return resp, nil
}

func (p *PermissionService) GetPermissionById(ctx context.Context, id uint64) (*types.PermissionResponse, error) {
	perm, err := p.PermissionDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, err
	}
	return toPermissionResponse(perm), nil
}

// SeedCatalog 幂等写入固定的资源操作矩阵和内置角色
func (p *PermissionService) SeedCatalog(ctx context.Context) (*types.SeedPermissionsResult, error) {
	result := &types.SeedPermissionsResult{}
	for _, resource := range models.Resources {
		for _, action := range models.Actions {
			perm := &models.Permission{
				Name:        fmt.Sprintf("%s.%s", resource, action),
				Description: fmt.Sprintf("%s %s", action, resource),
				Resource:    resource,
				Action:      action,
			}
			if err := p.PermissionDAO.FirstOrCreate(ctx, perm); err != nil {
				return nil, fmt.Errorf("seed permission %s: %w", perm.Name, err)
			}
			result.Permissions++
		}
	}

	builtin := []struct{ name, description string }{
		{models.RoleAdmin, "Back-office administrator"},
		{models.RoleSuperAdmin, "Implicitly granted every resource action"},
	}
	for _, r := range builtin {
		role, err := p.RoleDAO.FirstOrCreateByName(ctx, r.name, r.description)
		if err != nil {
			return nil, fmt.Errorf("seed role %s: %w", r.name, err)
		}
		result.Roles = append(result.Roles, role.Name)
	}

	p.Cache.Invalidate(ctx)
	log.L.Info("permission catalog seeded", zap.Int("permissions", result.Permissions), zap.Strings("roles", result.Roles))
	return result, nil
}

func toPermissionResponse(p *models.Permission) *types.PermissionResponse {
	return &types.PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Resource:    p.Resource,
		Action:      p.Action,
		CreatedAt:   p.CreatedAt,
	}
}
