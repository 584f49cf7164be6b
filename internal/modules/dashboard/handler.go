package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/dashboard", authMW)
	g.GET("", h.load)
	g.POST("/refetch", h.load)
}

// GET /dashboard: one request, one snapshot. A failed market source turns
// the whole load into a 502 with the collaborator's message.
func (h *Handler) load(c *gin.Context) {
	snap, err := h.svc.Load(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"ok": 0, "code": http.StatusBadGateway, "message": err.Error(),
		})
		return
	}
	response.OK(c, snap)
}
