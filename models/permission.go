package models

import "time"

const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// SuperAdmin 隐式拥有以下资源的全部操作, 不查 role_permissions
var (
	Resources = []string{"Products", "Categories", "Users", "Roles", "Inventory", "Orders", "Warehouses", "Reports"}
	Actions   = []string{"Create", "Update", "Delete", "Read"}
)

type Permission struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_permissions_name;column:name" json:"name"`
	Description string    `gorm:"size:500;column:description" json:"description"`
	Resource    string    `gorm:"size:50;not null;uniqueIndex:idx_permissions_resource_action,priority:1;column:resource" json:"resource"`
	Action      string    `gorm:"size:50;not null;uniqueIndex:idx_permissions_resource_action,priority:2;column:action" json:"action"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Permission) TableName() string {
	return "permissions"
}

type Role struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex:idx_roles_name;column:name" json:"name"`
	Description string    `gorm:"size:255;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

type UserRole struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
	RoleID    uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_user_roles_role_id;column:role_id" json:"role_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type RolePermission struct {
	RoleID       uint64    `gorm:"primaryKey;autoIncrement:false;column:role_id" json:"role_id"`
	PermissionID uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_role_permissions_permission_id;column:permission_id" json:"permission_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
