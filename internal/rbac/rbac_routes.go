package rbac

import (
	"go-hrdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc, service Service) {
	group := r.Group("/rbac")
	group.Use(authMiddleware)
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, ResourceRole, ActionRead), handler.ListRoles)
	}
}
