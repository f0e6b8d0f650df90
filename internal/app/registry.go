package app

import (
	"database/sql"
	"path/filepath"

	"faculty-portal/internal/directory"
	"faculty-portal/internal/joining"
	"faculty-portal/internal/leave"
	"faculty-portal/internal/ledger"
	"faculty-portal/internal/messaging/kafka"
	"faculty-portal/internal/middleware"
	"faculty-portal/internal/notification"
	"faculty-portal/internal/rbac"
	"faculty-portal/internal/rbac/infra"
	"faculty-portal/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	directoryRepo := directory.NewRepository(gormDB)
	ledgerRepo, err := ledger.NewRepository(gormDB)
	if err != nil {
		return err
	}
	leaveRepo, err := leave.NewRepository(gormDB)
	if err != nil {
		return err
	}
	joiningRepo, err := joining.NewRepository(gormDB)
	if err != nil {
		return err
	}
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	counterRepo := counter.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("configs", "rbac_model.conf"))
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	trigger := notification.NewOutboxTrigger(outboxRepo)
	directoryService := directory.NewService(directoryRepo, rdb)
	ledgerService := ledger.NewService(ledgerRepo)
	leaveService := leave.NewService(db, leaveRepo, ledgerRepo, joiningRepo, counterRepo, directoryService, trigger)
	joiningService := joining.NewService(db, joiningRepo, leaveRepo, trigger)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	directoryHandler := directory.NewHandler(directoryService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	leaveHandler := leave.NewHandler(leaveService)
	joiningHandler := joining.NewHandler(joiningService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(20, 40))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		directory.RegisterRoutes(api, directoryHandler, rbacService)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		joining.RegisterRoutes(api, joiningHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
	}

	return nil
}
