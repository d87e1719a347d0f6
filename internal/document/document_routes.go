package document

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
	docs := r.Group("/documents")
	docs.Use(authMiddleware)
	{
		docs.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDocument, rbac.ActionRead), handler.GetAll)
		docs.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDocument, rbac.ActionRead), handler.GetByID)
		docs.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDocument, rbac.ActionUpload), handler.Upload)
	}
}
