package candidate

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
	candidates := r.Group("/candidates")
	candidates.Use(authMiddleware)
	{
		candidates.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceCandidate, rbac.ActionRead), handler.GetAll)
		candidates.GET("/options", middleware.RBACAuthorize(rbacService, rbac.ResourceCandidate, rbac.ActionRead), handler.Options)
		candidates.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceCandidate, rbac.ActionRead), handler.GetByID)
		candidates.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceCandidate, rbac.ActionCreate), handler.Create)
	}
}
