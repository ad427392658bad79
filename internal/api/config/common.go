package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Admin  AdminConfig  `mapstructure:"admin"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// RedisConfig Redis连接配置（URL 可由环境变量 REDIS_URL 覆盖）
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AdminConfig 管理端配置（Password 可由环境变量 ADMIN_PASSWORD 覆盖）
type AdminConfig struct {
	Password string `mapstructure:"password"`
}
