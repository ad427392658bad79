package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
//
// 配置文件可以不存在（纯环境变量部署），但 Redis 连接 URL 缺失视为致命错误
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	_ = viper.BindEnv("redis.url", "REDIS_URL")
	_ = viper.BindEnv("admin.password", "ADMIN_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Redis.URL == "" {
		return errors.New("redis url is not configured (set redis.url or REDIS_URL)")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	Cfg = &cfg

	return nil
}
