package service

import (
	"Backoffice/models"
	"Backoffice/pkg/clock"
	"Backoffice/pkg/log"
	"Backoffice/types"
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	customerEntityType = "Customer"
	// 回退查询历史订单时最多取的行数
	salesOrderLookupLimit = 20
)

type CustomerService struct {
	CustomerDAO   CustomerRepository
	SalesOrderDAO SalesOrderRepository
	AuditService  IAuditService
	Clock         clock.Nower
}

var _ ICustomerService = (*CustomerService)(nil)

//go:generate mockgen -source=customer.go -package service -destination customer_mock.go ICustomerService
type ICustomerService interface {
	LookupByPhone(ctx context.Context, phone string) (*types.CustomerResponse, error)
	Register(ctx context.Context, actorID uint64, req *types.RegisterCustomerRequest) (*types.CustomerResponse, error)
	GetById(ctx context.Context, id uint64) (*types.CustomerResponse, error)
	List(ctx context.Context) ([]*types.CustomerResponse, error)
	Update(ctx context.Context, actorID uint64, id uint64, req *types.UpdateCustomerRequest) (*types.CustomerResponse, error)
}

// LookupByPhone 先查客户表, 查不到时用历史订单合成一个未保存的客户
func (s *CustomerService) LookupByPhone(ctx context.Context, phone string) (*types.CustomerResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrCustomerNotFound
	}

	customer, err := s.CustomerDAO.FindActiveByPhone(ctx, phone)
	if err == nil {
		return toCustomerResponse(customer, types.CustomerSourceCustomer), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	orders, err := s.SalesOrderDAO.FindByPhone(ctx, phone, salesOrderLookupLimit)
	if err != nil {
		return nil, err
	}
	order := pickSalesOrder(orders)
	if order == nil {
		return nil, ErrCustomerNotFound
	}
	return toCustomerResponse(order.ToCustomer(), types.CustomerSourceSalesOrder), nil
}

// pickSalesOrder 有真实姓名的订单优先, 同等条件下取最新
func pickSalesOrder(orders []*models.SalesOrder) *models.SalesOrder {
	if len(orders) == 0 {
		return nil
	}
	ranked := slices.Clone(orders)
	slices.SortStableFunc(ranked, func(a, b *models.SalesOrder) int {
		if a.HasRealName() != b.HasRealName() {
			if a.HasRealName() {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return ranked[0]
}

func (s *CustomerService) Register(ctx context.Context, actorID uint64, req *types.RegisterCustomerRequest) (*types.CustomerResponse, error) {
	phone := strings.TrimSpace(req.Phone)

	taken, err := s.CustomerDAO.IsPhoneTaken(ctx, phone, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneConflict
	}

	customer := &models.Customer{
		FullName:  strings.TrimSpace(req.FullName),
		Phone:     phone,
		Email:     optional(req.Email),
		Address:   optional(req.Address),
		IsActive:  true,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.CustomerDAO.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneConflict
		}
		return nil, err
	}
	log.L.Info("customer registered", zap.Uint64("customer_id", customer.ID), zap.Uint64("actor_id", actorID))

	s.AuditService.Record(ctx, AuditEntry{
		EntityType: customerEntityType,
		EntityID:   strconv.FormatUint(customer.ID, 10),
		Action:     models.AuditActionCreated,
		After:      customer,
		ActorID:    actorID,
	})
	return toCustomerResponse(customer, types.CustomerSourceCustomer), nil
}

func (s *CustomerService) GetById(ctx context.Context, id uint64) (*types.CustomerResponse, error) {
	customer, err := s.CustomerDAO.FindActiveById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerResponse(customer, types.CustomerSourceCustomer), nil
}

func (s *CustomerService) List(ctx context.Context) ([]*types.CustomerResponse, error) {
	customers, err := s.CustomerDAO.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]*types.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, toCustomerResponse(c, types.CustomerSourceCustomer))
	}
	return resp, nil
}

// Update 停用的客户也可以编辑, 用于重新启用
func (s *CustomerService) Update(ctx context.Context, actorID uint64, id uint64, req *types.UpdateCustomerRequest) (*types.CustomerResponse, error) {
	customer, err := s.CustomerDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	before := *customer

	phone := strings.TrimSpace(req.Phone)
	if phone != customer.Phone {
		taken, err := s.CustomerDAO.IsPhoneTaken(ctx, phone, customer.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneConflict
		}
	}

	now := s.Clock.Now()
	customer.FullName = strings.TrimSpace(req.FullName)
	customer.Phone = phone
	customer.Email = optional(req.Email)
	customer.Address = optional(req.Address)
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	customer.UpdatedAt = &now

	if err := s.CustomerDAO.Save(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneConflict
		}
		return nil, err
	}

	s.AuditService.Record(ctx, AuditEntry{
		EntityType: customerEntityType,
		EntityID:   strconv.FormatUint(customer.ID, 10),
		Action:     models.AuditActionUpdated,
		Before:     &before,
		After:      customer,
		ActorID:    actorID,
	})
	return toCustomerResponse(customer, types.CustomerSourceCustomer), nil
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toCustomerResponse(c *models.Customer, source string) *types.CustomerResponse {
	return &types.CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Source:    source,
	}
}
