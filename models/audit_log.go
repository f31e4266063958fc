package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AuditActionCreated = "Created"
	AuditActionUpdated = "Updated"
)

// AuditLog 只追加, 主键由 snowflake 生成
type AuditLog struct {
	ID         int64          `gorm:"primaryKey;autoIncrement:false;column:id" json:"id,string"`
	EntityType string         `gorm:"size:100;not null;index:idx_audit_logs_entity,priority:1;column:entity_type" json:"entity_type"`
	EntityID   string         `gorm:"size:64;not null;index:idx_audit_logs_entity,priority:2;column:entity_id" json:"entity_id"`
	Action     string         `gorm:"size:50;not null;column:action" json:"action"`
	Before     datatypes.JSON `gorm:"column:before_json" json:"before,omitempty"`
	After      datatypes.JSON `gorm:"column:after_json" json:"after,omitempty"`
	ActorID    uint64         `gorm:"not null;index:idx_audit_logs_actor_id;column:actor_id" json:"actor_id"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
