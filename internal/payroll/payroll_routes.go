package payroll

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
	payrolls := r.Group("/payrolls")
	payrolls.Use(authMiddleware)
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead), handler.GetAll)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead), handler.GetByID)
		payrolls.GET("/:id/payslip", middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead), handler.DownloadPayslip)
		payrolls.POST("/preview", middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead), handler.Preview)

		create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionCreate)}
		if handler.rdb != nil {
			create = append(create, middleware.Idempotency(handler.rdb))
		}
		payrolls.POST("", append(create, handler.Create)...)
	}
}
