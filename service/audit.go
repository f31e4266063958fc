package service

import (
	"Backoffice/config"
	"Backoffice/models"
	"Backoffice/pkg/clock"
	"Backoffice/pkg/log"
	"Backoffice/pkg/snowflake"
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AuditEntry Before/After 为实体快照, 序列化为 JSON 保存
type AuditEntry struct {
	EntityType string
	EntityID   string
	Action     string
	Before     any
	After      any
	ActorID    uint64
}

//go:generate mockgen -source=audit.go -package service -destination audit_mock.go IAuditService
type IAuditService interface {
	// Record 同步写入, 失败只记录日志不影响主流程
	Record(ctx context.Context, entry AuditEntry)
}

type AuditService struct {
	AuditLogDAO AuditLogRepository
	Publisher   EventPublisher
	Config      *config.RocketMQConfig
	Clock       clock.Nower
}

var _ IAuditService = (*AuditService)(nil)

func (a *AuditService) Record(ctx context.Context, entry AuditEntry) {
	row := &models.AuditLog{
		ID:         snowflake.GenID(),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Action:     entry.Action,
		Before:     snapshot(entry.Before),
		After:      snapshot(entry.After),
		ActorID:    entry.ActorID,
		CreatedAt:  a.Clock.Now(),
	}

	fields := []zap.Field{
		zap.String("entity_type", row.EntityType),
		zap.String("entity_id", row.EntityID),
		zap.String("action", row.Action),
		zap.Uint64("actor_id", row.ActorID),
	}
	if err := a.AuditLogDAO.Create(ctx, row); err != nil {
		log.L.Error("write audit log failed", append(fields, zap.Error(err))...)
		return
	}

	if a.Publisher == nil || a.Config == nil {
		return
	}
	body, err := json.Marshal(row)
	if err != nil {
		log.L.Warn("encode audit event failed", append(fields, zap.Error(err))...)
		return
	}
	if err := a.Publisher.SendMsg(ctx, a.Config.AuditTopic, row.EntityType+":"+row.EntityID, body); err != nil {
		log.L.Warn("publish audit event failed", append(fields, zap.Error(err))...)
	}
}

func snapshot(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.L.Warn("encode audit snapshot failed", zap.Error(err))
		return nil
	}
	return datatypes.JSON(raw)
}
