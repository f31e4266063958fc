package models

import (
	"strings"
	"time"
)

// WalkInCustomerName 门店散客下单时的占位姓名
const WalkInCustomerName = "Walk-in Customer"

// Customer 对应 customers 表, 通过 IsActive 软停用
type Customer struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FullName  string     `gorm:"size:200;not null;index:idx_customers_full_name;column:full_name" json:"full_name"`
	Phone     string     `gorm:"size:32;not null;uniqueIndex:idx_customers_phone;column:phone" json:"phone"`
	Email     *string    `gorm:"size:255;column:email" json:"email"`
	Address   *string    `gorm:"size:500;column:address" json:"address"`
	IsActive  bool       `gorm:"not null;default:true;index:idx_customers_is_active;column:is_active" json:"is_active"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// SalesOrder 历史订单快照, 只读, 冗余了下单时的客户信息
type SalesOrder struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderNumber     string    `gorm:"size:50;not null;uniqueIndex:idx_sales_orders_number;column:order_number" json:"order_number"`
	CustomerName    string    `gorm:"size:200;column:customer_name" json:"customer_name"`
	CustomerPhone   string    `gorm:"size:32;index:idx_sales_orders_phone;column:customer_phone" json:"customer_phone"`
	CustomerEmail   *string   `gorm:"size:255;column:customer_email" json:"customer_email"`
	CustomerAddress *string   `gorm:"size:500;column:customer_address" json:"customer_address"`
	TotalAmount     float64   `gorm:"type:decimal(18,2);not null;default:0;column:total_amount" json:"total_amount"`
	CreatedAt       time.Time `gorm:"column:created_at;index:idx_sales_orders_created_at" json:"created_at"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}

// HasRealName 排除空姓名和散客占位
func (o *SalesOrder) HasRealName() bool {
	name := strings.TrimSpace(o.CustomerName)
	return name != "" && !strings.EqualFold(name, WalkInCustomerName)
}

// ToCustomer 由订单合成一个未持久化的客户, ID 为 0
func (o *SalesOrder) ToCustomer() *Customer {
	return &Customer{
		FullName:  o.CustomerName,
		Phone:     o.CustomerPhone,
		Email:     o.CustomerEmail,
		Address:   o.CustomerAddress,
		IsActive:  true,
		CreatedAt: o.CreatedAt,
	}
}
