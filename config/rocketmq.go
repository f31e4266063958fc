package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	AuditTopic string `yaml:"audit_topic"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

// Enabled 未配置 nameserver 时不投递审计事件
func (r *RocketMQConfig) Enabled() bool {
	return r != nil && len(r.NameServer) > 0
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
