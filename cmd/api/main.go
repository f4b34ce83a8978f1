package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zemmendes/Lumera-App/internal/config"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
	"github.com/zemmendes/Lumera-App/internal/repository/memory"
	"github.com/zemmendes/Lumera-App/internal/repository/mysql"
	"github.com/zemmendes/Lumera-App/internal/repository/redis"
	"github.com/zemmendes/Lumera-App/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// mysql 连接按需打开，storage 和 sessions 可能都用到
	var db *gorm.DB
	openDB := func() *gorm.DB {
		if db == nil {
			var err error
			db, err = mysql.Open(cfg.MySQLDSN)
			if err != nil {
				log.Fatalf("open mysql: %v", err)
			}
		}
		return db
	}

	var store repository.Store
	switch cfg.StorageBackend {
	case "mysql":
		store, err = mysql.NewStore(openDB())
		if err != nil {
			log.Fatalf("init mysql store: %v", err)
		}
	case "memory":
		store = memory.NewStore()
	default:
		log.Fatalf("unknown storage backend %q", cfg.StorageBackend)
	}

	var sessions repository.SessionStore
	switch cfg.SessionBackend {
	case "mysql":
		sessions, err = mysql.NewSessionStore(openDB(), cfg.SessionTTL)
		if err != nil {
			log.Fatalf("init mysql sessions: %v", err)
		}
	case "redis":
		client, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		sessions = redis.NewSessionStore(client, cfg.SessionTTL)
	case "memory":
		sessions = memory.NewSessionStore(cfg.SessionTTL, cfg.SweepInterval)
	default:
		log.Fatalf("unknown session backend %q", cfg.SessionBackend)
	}
	defer sessions.Close()

	events := pkg.EventSender(pkg.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		defer producer.Close()
		events = producer.Sender()
	}

	r := router.New(router.Deps{
		Store:         store,
		Sessions:      sessions,
		SessionSecret: []byte(cfg.SessionSecret),
		SessionTTL:    cfg.SessionTTL,
		Events:        events,
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
