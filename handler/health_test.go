package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestHealthDatabaseDown(t *testing.T) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(127.0.0.1:1)/backoffice?timeout=200ms",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	r := newTestEngine(&Health{Db: db})
	w := doRequest(r, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, gjson.Get(w.Body.String(), "msg").String(), "database unavailable")
}
