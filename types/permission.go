package types

import "time"

type PermissionResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

// EffectivePermissionsResponse Permissions 为 resource -> actions
type EffectivePermissionsResponse struct {
	UserID       uint64              `json:"user_id"`
	Roles        []string            `json:"roles"`
	IsSuperAdmin bool                `json:"is_super_admin"`
	Permissions  map[string][]string `json:"permissions"`
}

type SeedPermissionsResult struct {
	Permissions int      `json:"permissions"`
	Roles       []string `json:"roles"`
}
