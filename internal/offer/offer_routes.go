package offer

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
	offers := r.Group("/offers")
	offers.Use(authMiddleware)
	{
		offers.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceOffer, rbac.ActionRead), handler.GetAll)
		offers.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceOffer, rbac.ActionRead), handler.GetByID)
		offers.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceOffer, rbac.ActionCreate), handler.Create)
	}
}
