package slide

import (
	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	activity *activity.Service
}

func NewHandler(svc *Service, activitySvc *activity.Service) *Handler {
	return &Handler{svc: svc, activity: activitySvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/slides")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/reorder", h.reorder)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /slides: ordered for display
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

func (h *Handler) get(c *gin.Context) {
	sl := h.svc.GetByID(c.Param("id"))
	if sl == nil {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	response.OK(c, sl)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateSlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sl := h.svc.Create(&dto)
	h.activity.Record(middleware.CurrentUser(c).ID, "slide.create", sl.Title)
	response.Created(c, sl)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateSlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sl := h.svc.Update(c.Param("id"), &dto)
	if sl == nil {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "slide.update", sl.Title)
	response.OK(c, sl)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "slide.delete", c.Param("id"))
	response.NoContent(c)
}

// PUT /slides/reorder: ids in desired display order
func (h *Handler) reorder(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out := h.svc.Reorder(dto.IDs)
	h.activity.Record(middleware.CurrentUser(c).ID, "slide.reorder", "")
	response.OK(c, out)
}
