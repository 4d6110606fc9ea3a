package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vtuhub/vtugateway/pkg/cache"
	"github.com/vtuhub/vtugateway/pkg/mq"
	"github.com/vtuhub/vtugateway/pkg/mysql"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
)

type Config struct {
	API       API                `mapstructure:"api"`
	Auth      Auth               `mapstructure:"auth"`
	Database  mysql.Config       `mapstructure:"database"`
	Redis     cache.Config       `mapstructure:"redis"`
	RabbitMQ  mq.Config          `mapstructure:"rabbitmq"`
	Provider  vtuprovider.Config `mapstructure:"provider"`
	Publisher Publisher          `mapstructure:"publisher"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type Publisher struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("redis.ttl", 5*time.Minute)
	viper.SetDefault("provider.mode", vtuprovider.ModeSimulator)
	viper.SetDefault("provider.timeout", 5*time.Second)
	viper.SetDefault("provider.max_retry", 3)
	viper.SetDefault("provider.latency", 2*time.Second)
	viper.SetDefault("provider.success_rate", 0.8)
	viper.SetDefault("publisher.interval", 30*time.Second)
	viper.SetDefault("publisher.batch_size", 100)

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
