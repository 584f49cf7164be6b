package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type upsertDTO struct {
	Category string `json:"category" binding:"required"`
	Key      string `json:"key" binding:"required"`
	Value    string `json:"value"`
}

type Handler struct {
	svc      *Service
	activity *activity.Service
}

func NewHandler(svc *Service, activitySvc *activity.Service) *Handler {
	return &Handler{svc: svc, activity: activitySvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/settings", authMW)

	g.GET("", h.list)
	g.PUT("", h.upsert)
	g.DELETE("/:id", h.delete)
}

// GET /settings?category=general
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List(c.Query("category")))
}

func (h *Handler) upsert(c *gin.Context) {
	var dto upsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	st := h.svc.Upsert(dto.Category, dto.Key, dto.Value)
	h.activity.Record(middleware.CurrentUser(c).ID, "setting.update", dto.Category+"."+dto.Key)
	response.OK(c, st)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFoundMsg(c, "setting not found")
		return
	}
	response.NoContent(c)
}
