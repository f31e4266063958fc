package config

import "time"

// Cache 缓存配置, PermissionTTL 为 0 时不缓存权限目录
type Cache struct {
	PermissionTTL time.Duration `json:"permission_ttl" yaml:"permission_ttl"`
}

func ProvideCacheConfig(cfg *Config) *Cache {
	return cfg.Cache
}
