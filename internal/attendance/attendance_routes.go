package attendance

import (
	"go-hrdesk/internal/middleware"
	"go-hrdesk/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	attendance.Use(authMiddleware)
	{
		attendance.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead), h.GetAll)
		attendance.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead), h.GetByID)
		attendance.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate), h.Record)
	}
}
