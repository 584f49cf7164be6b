package notification

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/notifications", authMW)

	g.GET("", h.list)
	g.GET("/unread_count", h.unreadCount)
	g.PATCH("/read_all", h.markAllRead)
	g.PATCH("/:id/read", h.markRead)
	g.DELETE("/:id", h.delete)
}

// GET /notifications?limit=N: only the caller's own records
func (h *Handler) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	response.OK(c, h.svc.Recent(middleware.CurrentUser(c).ID, limit))
}

func (h *Handler) unreadCount(c *gin.Context) {
	response.OK(c, gin.H{"count": h.svc.UnreadCount(middleware.CurrentUser(c).ID)})
}

func (h *Handler) markRead(c *gin.Context) {
	n := h.svc.MarkRead(c.Param("id"))
	if n == nil {
		response.NotFoundMsg(c, "notification not found")
		return
	}
	response.OK(c, n)
}

func (h *Handler) markAllRead(c *gin.Context) {
	touched := h.svc.MarkAllRead(middleware.CurrentUser(c).ID)
	response.OK(c, gin.H{"updated": touched})
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFoundMsg(c, "notification not found")
		return
	}
	response.NoContent(c)
}
