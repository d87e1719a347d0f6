package interview

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
	interviews := r.Group("/interviews")
	interviews.Use(authMiddleware)
	{
		interviews.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceInterview, rbac.ActionRead), handler.GetAll)
		interviews.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceInterview, rbac.ActionRead), handler.GetByID)
		interviews.GET("/:id/report", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead), handler.DownloadReport)
		interviews.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceInterview, rbac.ActionCreate), handler.Create)
	}
}
