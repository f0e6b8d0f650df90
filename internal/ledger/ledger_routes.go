package ledger

import (
	"faculty-portal/internal/middleware"
	"faculty-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("", middleware.RBACAuthorize(rbacService, "balance", "read"), handler.GetMine)
		balances.GET("/:employeeId", middleware.RBACAuthorize(rbacService, "balance", "read_all"), handler.GetByEmployee)
		balances.POST("", middleware.RBACAuthorize(rbacService, "balance", "provision"), handler.Provision)
	}
}
