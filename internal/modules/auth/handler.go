package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type loginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	svc      *Service
	activity *activity.Service
}

func NewHandler(svc *Service, activitySvc *activity.Service) *Handler {
	return &Handler{svc: svc, activity: activitySvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/login", h.login)

	a := g.Group("", authMW)
	a.GET("/me", h.me)
	a.POST("/logout", h.logout)
}

func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, errBadCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	h.activity.Record(user.ID, "auth.login", user.Email)
	response.OK(c, gin.H{"token": token, "user": user})
}

func (h *Handler) me(c *gin.Context) {
	response.OK(c, middleware.CurrentUser(c))
}

// Tokens are stateless; logout exists so the client flow has a server
// round-trip and the audit log records the event.
func (h *Handler) logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, "auth.logout", user.Email)
	response.NoContent(c)
}
