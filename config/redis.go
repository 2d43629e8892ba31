package config

// Redis Redis配置信息. Leaving the section out disables the like guard.
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

func ProvideRedisConfig(cfg *Config) *Redis {
	return cfg.Redis
}
