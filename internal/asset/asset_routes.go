package asset

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
	assets := r.Group("/assets")
	assets.Use(authMiddleware)
	{
		assets.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAsset, rbac.ActionRead), handler.GetAll)
		assets.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAsset, rbac.ActionRead), handler.GetByID)
		assets.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceAsset, rbac.ActionCreate), handler.Create)
	}
}
