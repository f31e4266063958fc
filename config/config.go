package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Cache    *Cache          `json:"cache" yaml:"cache"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads the config file and panics when it cannot, the server has nothing to run on without it.
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	conf.applyDefaults()
	conf.applyEnv()

	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Expire == 0 {
		c.Jwt.Expire = 2 * time.Hour
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.RocketMQ.AuditTopic == "" {
		c.RocketMQ.AuditTopic = "audit_events"
	}
	if c.Cache == nil {
		c.Cache = &Cache{}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
