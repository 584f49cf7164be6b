package page

import (
	"time"

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
	g := rg.Group("/pages")

	g.GET("", h.list)
	g.GET("/:slug", h.get)

	a := g.Group("", authMW)
	a.PUT("/:slug", h.save)
	a.DELETE("/:slug", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

// GET /pages/:slug?render=1: render=1 converts text blocks to HTML
func (h *Handler) get(c *gin.Context) {
	p := h.svc.Get(c.Param("slug"))
	if p == nil {
		response.NotFoundMsg(c, "page not found")
		return
	}
	if c.Query("render") != "1" {
		response.OK(c, p)
		return
	}

	out := renderedPage{
		Slug:      p.Slug,
		Title:     p.Title,
		Blocks:    make([]renderedBlock, len(p.Blocks)),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	for i, b := range p.Blocks {
		rb := renderedBlock{Kind: b.Kind, Data: blockData(b)}
		if b.Kind == models.BlockText && b.Text != nil {
			html, err := RenderMarkdown(b.Text.Markdown)
			if err != nil {
				response.InternalError(c, err)
				return
			}
			rb.HTML = html
		}
		out.Blocks[i] = rb
	}
	response.OK(c, out)
}

func (h *Handler) save(c *gin.Context) {
	var dto SavePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user := middleware.CurrentUser(c)
	doc := h.svc.Save(c.Param("slug"), models.PageDocument{
		Title:  dto.Title,
		Blocks: dto.Blocks,
	}, user.Name)
	h.activity.Record(user.ID, "page.save", doc.Slug)
	response.OK(c, doc)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("slug")) {
		response.NotFoundMsg(c, "page not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "page.delete", c.Param("slug"))
	response.NoContent(c)
}
