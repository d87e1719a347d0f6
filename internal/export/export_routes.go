package export

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
	reports := r.Group("/reports")
	reports.Use(authMiddleware)
	{
		reports.GET("/:table", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead), handler.Rows)
		reports.GET("/:table/xlsx", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionExport), handler.Workbook)
	}
}
