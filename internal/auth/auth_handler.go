package auth

import (
	"net/http"
	"time"

	"go-hrdesk/internal/middleware"
	"go-hrdesk/internal/session"
	"go-hrdesk/internal/shared/request"
	"go-hrdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       Service
	secureCookies bool
}

func NewHandler(s Service, secureCookies bool) *Handler {
	return &Handler{service: s, secureCookies: secureCookies}
}

func (ctrl *Handler) setAccessCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ctrl.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	clientType := request.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if clientType == request.ClientWeb {
		ctrl.setAccessCookie(c, result.AccessToken, int(time.Until(result.ExpiresAt).Seconds()))
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	resp, err := ctrl.service.GetMe(c.Request.Context(), c.GetInt64(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	identity := session.Identity{
		UserID: c.GetInt64(middleware.CtxUserID),
		Email:  c.GetString(middleware.CtxUserEmail),
		Name:   c.GetString(middleware.CtxUserName),
		Role:   c.GetString(middleware.CtxRole),
	}
	if err := ctrl.service.Logout(c.Request.Context(), identity, c.GetString(middleware.CtxSessionID)); err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.setAccessCookie(c, "", -1)
	response.Success(c, http.StatusOK, "signed out", nil)
}
