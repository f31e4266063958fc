package types

import "time"

const (
	CustomerSourceCustomer   = "customer"
	CustomerSourceSalesOrder = "sales_order"
)

type RegisterCustomerRequest struct {
	FullName string  `json:"full_name" binding:"required,max=200"`
	Phone    string  `json:"phone" binding:"required,max=32"`
	Email    *string `json:"email" binding:"omitempty,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
}

// UpdateCustomerRequest 全量覆盖姓名/手机/邮箱/地址, IsActive 为空时不变
type UpdateCustomerRequest struct {
	FullName string  `json:"full_name" binding:"required,max=200"`
	Phone    string  `json:"phone" binding:"required,max=32"`
	Email    *string `json:"email" binding:"omitempty,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	IsActive *bool   `json:"is_active"`
}

type CustomerResponse struct {
	ID        uint64     `json:"id"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Email     *string    `json:"email"`
	Address   *string    `json:"address"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Source    string     `json:"source"`
}
