package rbac

import (
	"net/http"
	"strings"

	"go-hrdesk/internal/domain"
	"go-hrdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce checks a permission for the caller's role. The role in the body is
// ignored when the request is authenticated.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if role := c.GetString("role"); role != "" {
		var body struct {
			Resource string `json:"resource" binding:"required"`
			Action   string `json:"action" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			response.BindError(c, err)
			return
		}
		req = domain.EnforceRequest{Role: role, Resource: body.Resource, Action: body.Action}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	req.Role = strings.ToUpper(strings.TrimSpace(req.Role))
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, roles, nil)
}
