package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type CacheDriver string

const (
	CacheDriverRedis  CacheDriver = "redis"
	CacheDriverMemory CacheDriver = "memory"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version string      `env:"APP_VERSION" envDefault:"local"`
		Env     Environment `env:"APP_ENV" envDefault:"local"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	SlotService struct {
		URL      string `env:"SLOT_SERVICE_URL"`
		Username string `env:"SLOT_SERVICE_USERNAME"`
		Password string `env:"SLOT_SERVICE_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"slot_manager:slot_manager"`
		BasicClients       []ConfigBasicClient
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     string `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD"`
	}

	RabbitMQ struct {
		Enabled    bool   `env:"RABBITMQ_ENABLED"`
		URL        string `env:"RABBITMQ_URL"`
		Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"slot-manager"`
		Queue      string `env:"RABBITMQ_QUEUE" envDefault:"slot-manager.slot-booked"`
		RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"slot-manager.slots.booked"`
	}

	Cache struct {
		Driver     CacheDriver `env:"CACHE_DRIVER" envDefault:"redis"`
		MemorySize int         `env:"CACHE_MEMORY_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор пар логин:пароль входящей basic-авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	return cfg, nil
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
