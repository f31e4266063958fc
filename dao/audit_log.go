package dao

import (
	"Backoffice/models"

	"gorm.io/gorm"
)

type AuditLog struct {
	Repo[models.AuditLog]
}

func NewAuditLog(db *gorm.DB) *AuditLog {
	return &AuditLog{
		Repo: NewRepo[models.AuditLog](db),
	}
}
