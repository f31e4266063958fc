package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"Backoffice/models"

	"gorm.io/gorm"
)

type fakeCustomerDAO struct {
	mu        sync.Mutex
	nextID    uint64
	customers map[uint64]*models.Customer
	creates   int
	saves     int
}

func newFakeCustomerDAO(seed ...*models.Customer) *fakeCustomerDAO {
	f := &fakeCustomerDAO{customers: map[uint64]*models.Customer{}}
	for _, c := range seed {
		f.customers[c.ID] = c
		f.nextID = max(f.nextID, c.ID)
	}
	return f
}

func (f *fakeCustomerDAO) FindActiveByPhone(_ context.Context, phone string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0)
	for id, c := range f.customers {
		if c.Phone == phone && c.IsActive {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	slices.Sort(ids)
	c := *f.customers[ids[0]]
	return &c, nil
}

func (f *fakeCustomerDAO) FindActiveById(ctx context.Context, id uint64) (*models.Customer, error) {
	c, err := f.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCustomerDAO) FindById(_ context.Context, id uint64) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerDAO) ListActive(_ context.Context) ([]*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]*models.Customer, 0)
	for _, c := range f.customers {
		if c.IsActive {
			copied := *c
			items = append(items, &copied)
		}
	}
	slices.SortFunc(items, func(a, b *models.Customer) int {
		if n := strings.Compare(a.FullName, b.FullName); n != 0 {
			return n
		}
		return int(a.ID) - int(b.ID)
	})
	return items, nil
}

func (f *fakeCustomerDAO) IsPhoneTaken(_ context.Context, phone string, excludeID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.customers {
		if c.Phone == phone && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerDAO) Create(_ context.Context, c *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	copied := *c
	f.customers[c.ID] = &copied
	f.creates++
	return nil
}

func (f *fakeCustomerDAO) Save(_ context.Context, c *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *c
	f.customers[c.ID] = &copied
	f.saves++
	return nil
}

type fakeSalesOrderDAO struct {
	orders []*models.SalesOrder
	err    error
}

// FindByPhone 故意不排序, 排序由服务层保证
func (f *fakeSalesOrderDAO) FindByPhone(_ context.Context, phone string, limit int) ([]*models.SalesOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]*models.SalesOrder, 0)
	for _, o := range f.orders {
		if o.CustomerPhone == phone && len(items) < limit {
			items = append(items, o)
		}
	}
	return items, nil
}

type fakePermissionDAO struct {
	permissions []*models.Permission
	userPerms   map[uint64][]*models.Permission
	listCalls   int
}

func (f *fakePermissionDAO) ListOrdered(_ context.Context) ([]*models.Permission, error) {
	f.listCalls++
	items := slices.Clone(f.permissions)
	slices.SortFunc(items, func(a, b *models.Permission) int {
		if n := strings.Compare(a.Resource, b.Resource); n != 0 {
			return n
		}
		return strings.Compare(a.Action, b.Action)
	})
	return items, nil
}

func (f *fakePermissionDAO) FindById(_ context.Context, id uint64) (*models.Permission, error) {
	for _, p := range f.permissions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePermissionDAO) ListByUser(_ context.Context, userID uint64) ([]*models.Permission, error) {
	return f.userPerms[userID], nil
}

func (f *fakePermissionDAO) FirstOrCreate(_ context.Context, perm *models.Permission) error {
	for _, p := range f.permissions {
		if p.Resource == perm.Resource && p.Action == perm.Action {
			*perm = *p
			return nil
		}
	}
	perm.ID = uint64(len(f.permissions) + 1)
	f.permissions = append(f.permissions, perm)
	return nil
}

type fakeRoleDAO struct {
	userRoles map[uint64][]string
	roles     []*models.Role
}

func (f *fakeRoleDAO) RoleNamesByUser(_ context.Context, userID uint64) ([]string, error) {
	return f.userRoles[userID], nil
}

func (f *fakeRoleDAO) FirstOrCreateByName(_ context.Context, name, description string) (*models.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	role := &models.Role{ID: uint64(len(f.roles) + 1), Name: name, Description: description}
	f.roles = append(f.roles, role)
	return role, nil
}

type fakeCatalogCache struct {
	items       []*models.Permission
	hit         bool
	invalidated int
}

func (f *fakeCatalogCache) GetCatalog(_ context.Context) ([]*models.Permission, bool) {
	return f.items, f.hit
}

func (f *fakeCatalogCache) SetCatalog(_ context.Context, items []*models.Permission) {
	f.items = items
	f.hit = true
}

func (f *fakeCatalogCache) Invalidate(_ context.Context) {
	f.items = nil
	f.hit = false
	f.invalidated++
}

type fakeProductDAO struct {
	products map[uint64]*models.Product
	variants map[uint64]*models.ProductVariant
}

func (f *fakeProductDAO) FindById(_ context.Context, id uint64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductDAO) FindByIds(_ context.Context, ids []uint64) ([]*models.Product, error) {
	items := make([]*models.Product, 0)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			items = append(items, p)
		}
	}
	return items, nil
}

// fakeVariantDAO 与 fakeProductDAO 共享数据
type fakeVariantDAO struct {
	*fakeProductDAO
}

func (f fakeVariantDAO) FindByIdAndProduct(_ context.Context, id, productID uint64) (*models.ProductVariant, error) {
	v, ok := f.variants[id]
	if !ok || v.ProductID != productID {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f fakeVariantDAO) FindByIds(_ context.Context, ids []uint64) ([]*models.ProductVariant, error) {
	items := make([]*models.ProductVariant, 0)
	for _, id := range ids {
		if v, ok := f.variants[id]; ok {
			items = append(items, v)
		}
	}
	return items, nil
}

type fakeWishlistDAO struct {
	mu     sync.Mutex
	nextID uint64
	items  []*models.Wishlist
}

func sameVariant(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (f *fakeWishlistDAO) ListByUser(_ context.Context, userID uint64) ([]*models.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]*models.Wishlist, 0)
	for _, item := range f.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b *models.Wishlist) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}
		return int(b.ID) - int(a.ID)
	})
	return items, nil
}

func (f *fakeWishlistDAO) Exists(_ context.Context, userID, productID uint64, variantID *uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID && sameVariant(item.ProductVariantID, variantID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistDAO) FindByIdAndUser(_ context.Context, id, userID uint64) (*models.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id && item.UserID == userID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWishlistDAO) Create(_ context.Context, item *models.Wishlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, item)
	return nil
}

func (f *fakeWishlistDAO) Delete(_ context.Context, item *models.Wishlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = slices.DeleteFunc(f.items, func(w *models.Wishlist) bool { return w.ID == item.ID })
	return nil
}

type fakeAuditLogDAO struct {
	rows []*models.AuditLog
	err  error
}

func (f *fakeAuditLogDAO) Create(_ context.Context, row *models.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakePublisher struct {
	topics []string
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakePublisher) SendMsg(_ context.Context, topic string, key string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.keys = append(f.keys, key)
	f.bodies = append(f.bodies, body)
	return nil
}

func ptr[T any](v T) *T { return &v }
