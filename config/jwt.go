package config

import "time"

type Jwt struct {
	Secret string        `json:"secret" yaml:"secret"`
	Issuer string        `json:"issuer" yaml:"issuer"`
	Expire time.Duration `json:"expire" yaml:"expire"`
}
