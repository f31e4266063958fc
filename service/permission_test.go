package service

import (
	"context"
	"testing"

	"Backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionEffective(t *testing.T) {
	ctx := context.Background()

	t.Run("super admin gets every resource action", func(t *testing.T) {
		// given: 没有任何 role_permissions
		svc := &PermissionService{
			PermissionDAO: &fakePermissionDAO{},
			RoleDAO:       &fakeRoleDAO{userRoles: map[uint64][]string{7: {models.RoleSuperAdmin}}},
			Cache:         &fakeCatalogCache{},
		}

		// when
		got, err := svc.GetEffectivePermissions(ctx, 7)

		// then
		require.NoError(t, err)
		assert.True(t, got.IsSuperAdmin)
		assert.Len(t, got.Permissions, 8)
		for _, resource := range models.Resources {
			assert.ElementsMatch(t, []string{"Create", "Update", "Delete", "Read"}, got.Permissions[resource], resource)
		}
	})

	t.Run("granted permissions grouped without duplicates", func(t *testing.T) {
		perms := &fakePermissionDAO{userPerms: map[uint64][]*models.Permission{
			7: {
				{ID: 1, Resource: "Customer", Action: "Read"},
				{ID: 1, Resource: "Customer", Action: "Read"},
				{ID: 2, Resource: "Customer", Action: "Update"},
				{ID: 3, Resource: "Product", Action: "Read"},
			},
		}}
		svc := &PermissionService{
			PermissionDAO: perms,
			RoleDAO:       &fakeRoleDAO{userRoles: map[uint64][]string{7: {models.RoleAdmin}}},
			Cache:         &fakeCatalogCache{},
		}

		got, err := svc.GetEffectivePermissions(ctx, 7)
		require.NoError(t, err)
		assert.False(t, got.IsSuperAdmin)
		assert.Equal(t, []string{models.RoleAdmin}, got.Roles)
		assert.Equal(t, map[string][]string{
			"Customer": {"Read", "Update"},
			"Product":  {"Read"},
		}, got.Permissions)
	})

	t.Run("no roles yields empty map", func(t *testing.T) {
		svc := &PermissionService{PermissionDAO: &fakePermissionDAO{}, RoleDAO: &fakeRoleDAO{}, Cache: &fakeCatalogCache{}}

		got, err := svc.GetEffectivePermissions(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, got.Permissions)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := &PermissionService{PermissionDAO: &fakePermissionDAO{}, RoleDAO: &fakeRoleDAO{}, Cache: &fakeCatalogCache{}}

		_, err := svc.GetEffectivePermissions(ctx, 0)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestPermissionCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by resource then action and cached", func(t *testing.T) {
		perms := &fakePermissionDAO{permissions: []*models.Permission{
			{ID: 1, Resource: "Product", Action: "Read"},
			{ID: 2, Resource: "Customer", Action: "Update"},
			{ID: 3, Resource: "Customer", Action: "Create"},
		}}
		cache := &fakeCatalogCache{}
		svc := &PermissionService{PermissionDAO: perms, RoleDAO: &fakeRoleDAO{}, Cache: cache}

		got, err := svc.ListPermissions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, uint64(3), got[0].ID)
		assert.Equal(t, uint64(2), got[1].ID)
		assert.Equal(t, uint64(1), got[2].ID)
		assert.True(t, cache.hit)

		_, err = svc.ListPermissions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, perms.listCalls)
	})

	t.Run("grouped by resource", func(t *testing.T) {
		perms := &fakePermissionDAO{permissions: []*models.Permission{
			{ID: 1, Resource: "Product", Action: "Read"},
			{ID: 2, Resource: "Customer", Action: "Update"},
			{ID: 3, Resource: "Customer", Action: "Create"},
		}}
		svc := &PermissionService{PermissionDAO: perms, RoleDAO: &fakeRoleDAO{}, Cache: &fakeCatalogCache{}}

		got, err := svc.ListPermissionsByResource(ctx)
		require.NoError(t, err)
		require.Len(t, got["Customer"], 2)
		assert.Equal(t, "Create", got["Customer"][0].Action)
		assert.Len(t, got["Product"], 1)
	})

	t.Run("get by id", func(t *testing.T) {
		perms := &fakePermissionDAO{permissions: []*models.Permission{{ID: 5, Name: "Customer.Read", Resource: "Customer", Action: "Read"}}}
		svc := &PermissionService{PermissionDAO: perms, RoleDAO: &fakeRoleDAO{}, Cache: &fakeCatalogCache{}}

		got, err := svc.GetPermissionById(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Customer.Read", got.Name)

		_, err = svc.GetPermissionById(ctx, 6)
		assert.ErrorIs(t, err, ErrPermissionNotFound)
	})
}

func TestPermissionSeedCatalog(t *testing.T) {
	ctx := context.Background()
	perms := &fakePermissionDAO{}
	roles := &fakeRoleDAO{}
	cache := &fakeCatalogCache{hit: true}
	svc := &PermissionService{PermissionDAO: perms, RoleDAO: roles, Cache: cache}

	first, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 32, first.Permissions)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleSuperAdmin}, first.Roles)
	assert.Equal(t, 1, cache.invalidated)
	assert.False(t, cache.hit)

	_, err = svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, perms.permissions, 32)
	assert.Len(t, roles.roles, 2)

	got, err := svc.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Categories", got[0].Resource)
	assert.Equal(t, "Create", got[0].Action)
	assert.Equal(t, "Categories.Create", got[0].Name)
}
