package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/activities", authMW)
	g.GET("", h.list)
}

// GET /activities?limit=N
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
	response.OK(c, h.svc.Recent(limit))
}
