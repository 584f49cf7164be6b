package media

import (
	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
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
	g := rg.Group("/media")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /media?type=image&q=annual
func (h *Handler) list(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		response.OK(c, h.svc.Search(q))
		return
	}
	typ := models.MediaType(c.Query("type"))
	switch typ {
	case "", models.MediaImage, models.MediaVideo, models.MediaDocument:
	default:
		response.BadRequest(c, "unknown media type")
		return
	}
	response.OK(c, h.svc.List(typ))
}

func (h *Handler) get(c *gin.Context) {
	m := h.svc.GetByID(c.Param("id"))
	if m == nil {
		response.NotFoundMsg(c, "media item not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user := middleware.CurrentUser(c)
	m := h.svc.Create(&dto, user.Name)
	h.activity.Record(user.ID, "media.upload", m.Title)
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m := h.svc.Update(c.Param("id"), &dto)
	if m == nil {
		response.NotFoundMsg(c, "media item not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "media.update", m.Title)
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFoundMsg(c, "media item not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "media.delete", c.Param("id"))
	response.NoContent(c)
}
