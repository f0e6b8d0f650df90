package directory

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
	dir := r.Group("/directory")
	dir.Use(middleware.AuthMiddleware())
	{
		dir.GET("/routing-options", middleware.RBACAuthorize(rbacService, "directory", "read"), handler.RoutingOptions)
	}
}
