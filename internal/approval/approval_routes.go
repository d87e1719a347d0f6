package approval

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
	approvals := r.Group("/approvals")
	approvals.Use(authMiddleware)
	{
		approvals.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionRead), handler.GetAll)
		approvals.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionRead), handler.GetByID)
		approvals.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionCreate), handler.Create)
	}
}
