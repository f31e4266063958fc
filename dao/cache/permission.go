package cache

import (
	"Backoffice/config"
	"Backoffice/models"
	"Backoffice/pkg/log"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const permissionCatalogKey = "permission:catalog"

// PermissionCache 权限目录是静态数据, 缓存整张列表. redis 出错时视为未命中
type PermissionCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewPermissionCache(redis *redis.Client, conf *config.Cache) *PermissionCache {
	return &PermissionCache{redis: redis, ttl: conf.PermissionTTL}
}

func (p *PermissionCache) enabled() bool {
	return p != nil && p.redis != nil && p.ttl > 0
}

func (p *PermissionCache) GetCatalog(ctx context.Context) ([]*models.Permission, bool) {
	if !p.enabled() {
		return nil, false
	}
	raw, err := p.redis.Get(ctx, permissionCatalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("permission cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var items []*models.Permission
	if err := json.Unmarshal(raw, &items); err != nil {
		log.L.Warn("permission cache decode failed", zap.Error(err))
		return nil, false
	}
	return items, true
}

func (p *PermissionCache) SetCatalog(ctx context.Context, items []*models.Permission) {
	if !p.enabled() {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		log.L.Warn("permission cache encode failed", zap.Error(err))
		return
	}
	if err := p.redis.Set(ctx, permissionCatalogKey, raw, p.ttl).Err(); err != nil {
		log.L.Warn("permission cache set failed", zap.Error(err))
	}
}

// Invalidate 重新写入权限目录后调用
func (p *PermissionCache) Invalidate(ctx context.Context) {
	if !p.enabled() {
		return
	}
	if err := p.redis.Del(ctx, permissionCatalogKey).Err(); err != nil {
		log.L.Warn("permission cache invalidate failed", zap.Error(err))
	}
}
