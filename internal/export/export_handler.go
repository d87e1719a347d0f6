package export

import (
	"net/http"

	"go-hrdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Rows(c *gin.Context) {
	rows, err := h.service.Rows(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) Workbook(c *gin.Context) {
	data, name, err := h.service.Workbook(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Attachment(c, name, XLSXContentType, data)
}
