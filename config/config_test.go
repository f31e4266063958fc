package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
app:
  env: test
  debug: true
server:
  http: 9090
mysql:
  host: db
  port: 3306
  username: shop
  password: secret
  database: backoffice
  conn_max_lifetime: 5m
jwt:
  secret: abc
  expire: 2h
rocketmq:
  nameserver: ["127.0.0.1:9876"]
cache:
  permission_ttl: 10m
`)
		conf, err := Load(path)
		require.NoError(t, err)

		assert.True(t, conf.Debug())
		assert.Equal(t, 9090, conf.Server.Http)
		assert.Equal(t, 5*time.Minute, conf.MySQL.ConnMaxLifetime)
		assert.Equal(t, 2*time.Hour, conf.Jwt.Expire)
		assert.Equal(t, 10*time.Minute, conf.Cache.PermissionTTL)
		assert.True(t, conf.RocketMQ.Enabled())
		assert.Equal(t, "audit_events", conf.RocketMQ.AuditTopic)
		assert.Equal(t, "shop:secret@tcp(db:3306)/backoffice?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
	})

	t.Run("defaults for missing sections", func(t *testing.T) {
		conf, err := Load(writeConfig(t, "app:\n  debug: false\n"))
		require.NoError(t, err)

		assert.Equal(t, "dev", conf.App.Env)
		assert.Equal(t, 8080, conf.Server.Http)
		assert.False(t, conf.RocketMQ.Enabled())
		assert.Zero(t, conf.Cache.PermissionTTL)
		assert.Equal(t, 2*time.Hour, conf.Jwt.Expire)
	})

	t.Run("environment overrides secrets", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "from-env")
		t.Setenv("MYSQL_PASSWORD", "pw-env")

		conf, err := Load(writeConfig(t, "jwt:\n  secret: from-file\n"))
		require.NoError(t, err)

		assert.Equal(t, "from-env", conf.Jwt.Secret)
		assert.Equal(t, "pw-env", conf.MySQL.Password)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Panics(t, func() { New(filepath.Join(t.TempDir(), "nope.yaml")) })
	})
}
