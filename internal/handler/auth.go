package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/middleware"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

// AuthHandler runs the admin session lifecycle. The token is returned in the body
// for API clients and mirrored into an HttpOnly cookie for the browser.
type AuthHandler struct {
	svc    service.AdminService
	cookie SessionCookie
}

func NewAuthHandler(svc service.AdminService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

func (h *AuthHandler) Register(r *gin.RouterGroup, admin gin.HandlerFunc) {
	g := r.Group("/auth")
	{
		g.POST("/login", h.login)
		g.POST("/logout", admin, h.logout)
		g.GET("/me", admin, h.me)
	}
}

func (h *AuthHandler) login(c *gin.Context) {
	var in service.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	sess, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	h.setCookie(c, sess.Token, int(h.cookie.TTL.Seconds()))
	response.WriteData(c, http.StatusOK, sess)
}

func (h *AuthHandler) logout(c *gin.Context) {
	token := middleware.SessionToken(c, h.cookie.Name)
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		response.WriteError(c, err)
		return
	}
	h.setCookie(c, "", -1)
	response.WriteMessage(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) me(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.WriteError(c, service.ErrUnauthorized)
		return
	}
	a, err := h.svc.Me(c.Request.Context(), claims.Subject)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
