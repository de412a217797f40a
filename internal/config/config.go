package config

import (
	"fmt"
	"time"

	"github.com/Behyna/otp-services/otpgateway/internal/cache/redis"
	"github.com/Behyna/otp-services/otpgateway/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
	Redis    redis.Config `mapstructure:"redis"`
	Gateway  Gateway      `mapstructure:"gateway"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Gateway struct {
	BaseURL    string        `mapstructure:"base_url"`
	Token      string        `mapstructure:"token"`
	Timeout    time.Duration `mapstructure:"timeout"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
