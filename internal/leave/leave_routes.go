package leave

import (
	"faculty-portal/internal/middleware"
	"faculty-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "submit"),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.ListMine)
		leaves.GET("/incoming", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.ListIncoming)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByID)

		leaves.POST("/:id/resubmit", middleware.RBACAuthorize(rbacService, "leave", "submit"), handler.Resubmit)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "submit"), handler.Cancel)

		leaves.POST("/:id/recommend", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Recommend)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Reject)
		leaves.POST("/:id/return", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Return)

		leaves.POST("/:id/admin-approve", middleware.RBACAuthorize(rbacService, "leave", "admin_approve"), handler.AdminApprove)
	}
}
