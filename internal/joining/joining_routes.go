package joining

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
	reports := r.Group("/leaves/:id/joining-report")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("", middleware.RBACAuthorize(rbacService, "joining", "submit"), handler.Submit)
		reports.GET("", middleware.RBACAuthorize(rbacService, "joining", "read"), handler.GetByLeaveRequest)
	}
}
