package exit

import (
	"go-hrdesk/internal/middleware"
	"go-hrdesk/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	exits := r.Group("/exits")
	exits.Use(authMiddleware)
	{
		exits.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceExit, rbac.ActionRead), handler.GetAll)
		exits.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceExit, rbac.ActionRead), handler.GetByID)
		exits.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceExit, rbac.ActionCreate), handler.Create)
	}
}
