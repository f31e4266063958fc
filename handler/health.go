package handler

import (
	"net/http"

	"Backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	Db *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", h.Check)
}

// Check 数据库不可达时返回 503
func (h *Health) Check(c *gin.Context) {
	db, err := h.Db.DB()
	if err == nil {
		err = db.PingContext(c.Request.Context())
	}
	if err != nil {
		response.Abort(c, http.StatusServiceUnavailable, "database unavailable: "+err.Error())
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
