package app

import (
	"os"

	"faculty-portal/internal/directory"
	"faculty-portal/internal/joining"
	"faculty-portal/internal/leave"
	"faculty-portal/internal/ledger"
	"faculty-portal/internal/notification"
	"faculty-portal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&directory.Employee{},
		&ledger.LeaveBalance{},
		&leave.LeaveRequest{},
		&joining.JoiningReport{},
		&notification.Notification{},
	); err != nil {
		return err
	}

	// outbox and counters are written through raw SQL, so their DDL lives
	// here instead of on a gorm entity
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id TEXT,
			aggregate_type VARCHAR(40) NOT NULL,
			aggregate_id UUID NOT NULL,
			event_type VARCHAR(40) NOT NULL,
			topic TEXT NOT NULL,
			payload JSONB NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			error_message VARCHAR(500),
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, created_at)`,
		`CREATE TABLE IF NOT EXISTS sequence_counters (
			scope VARCHAR(20) NOT NULL,
			counter_type VARCHAR(40) NOT NULL,
			last_value BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (scope, counter_type)
		)`,
	}

	for _, stmt := range ddl {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
