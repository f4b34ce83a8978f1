package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 全部来自环境变量，启动时一次解析
type Config struct {
	Addr    string `env:"LUMERA_ADDR" envDefault:":8080"`
	GinMode string `env:"LUMERA_GIN_MODE" envDefault:"debug"`

	// memory | mysql
	StorageBackend string `env:"LUMERA_STORAGE" envDefault:"memory"`
	MySQLDSN       string `env:"LUMERA_MYSQL_DSN" envDefault:"user:password@tcp(127.0.0.1:3306)/lumera?charset=utf8mb4&parseTime=True"`

	// memory | mysql | redis
	SessionBackend string        `env:"LUMERA_SESSIONS" envDefault:"memory"`
	SessionSecret  string        `env:"LUMERA_SESSION_SECRET" envDefault:"secret-key"`
	SessionTTL     time.Duration `env:"LUMERA_SESSION_TTL" envDefault:"24h"`
	SweepInterval  time.Duration `env:"LUMERA_SESSION_SWEEP" envDefault:"10m"`

	RedisAddr     string `env:"LUMERA_REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"LUMERA_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"LUMERA_REDIS_DB" envDefault:"0"`

	// 不配置 broker 时事件只打日志
	KafkaBrokers []string `env:"LUMERA_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"LUMERA_KAFKA_TOPIC" envDefault:"lumera-events"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
