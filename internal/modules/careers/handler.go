package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/notification"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	activity *activity.Service
	notify   *notification.Service
	intakeMW gin.HandlerFunc
}

// NewHandler wires the careers surface. intakeMW guards the public
// application endpoint (rate limiting); pass nil to disable.
func NewHandler(svc *Service, activitySvc *activity.Service, notifySvc *notification.Service, intakeMW gin.HandlerFunc) *Handler {
	if intakeMW == nil {
		intakeMW = func(c *gin.Context) { c.Next() }
	}
	return &Handler{svc: svc, activity: activitySvc, notify: notifySvc, intakeMW: intakeMW}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	// Public careers page: active postings and the application form.
	rg.GET("/jobs", h.listPublicJobs)
	rg.GET("/jobs/:id", h.getJob)
	rg.POST("/job-applications", h.intakeMW, h.submitApplication)

	// Admin management surface.
	a := rg.Group("/admin/careers", authMW)
	a.GET("/jobs", h.listJobs)
	a.POST("/jobs", h.createJob)
	a.PUT("/jobs/:id", h.updateJob)
	a.DELETE("/jobs/:id", h.deleteJob)
	a.GET("/applications", h.listApplications)
	a.GET("/applications/:id", h.getApplication)
	a.PATCH("/applications/:id/status", h.updateApplicationStatus)
	a.DELETE("/applications/:id", h.deleteApplication)
}

// GET /jobs: public listing shows active postings only
func (h *Handler) listPublicJobs(c *gin.Context) {
	response.OK(c, h.svc.ListJobs(models.JobActive))
}

func (h *Handler) getJob(c *gin.Context) {
	j := h.svc.GetJob(c.Param("id"))
	if j == nil {
		response.NotFoundMsg(c, "job not found")
		return
	}
	response.OK(c, j)
}

// GET /admin/careers/jobs?status=paused
func (h *Handler) listJobs(c *gin.Context) {
	status := models.JobStatus(c.Query("status"))
	switch status {
	case "", models.JobActive, models.JobPaused, models.JobClosed:
	default:
		response.BadRequest(c, "unknown job status")
		return
	}
	response.OK(c, h.svc.ListJobs(status))
}

func (h *Handler) createJob(c *gin.Context) {
	var dto CreateJobDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	j := h.svc.CreateJob(&dto)
	h.activity.Record(middleware.CurrentUser(c).ID, "job.create", j.Title)
	response.Created(c, j)
}

func (h *Handler) updateJob(c *gin.Context) {
	var dto UpdateJobDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	j := h.svc.UpdateJob(c.Param("id"), &dto)
	if j == nil {
		response.NotFoundMsg(c, "job not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "job.update", j.Title)
	response.OK(c, j)
}

func (h *Handler) deleteJob(c *gin.Context) {
	if !h.svc.DeleteJob(c.Param("id")) {
		response.NotFoundMsg(c, "job not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "job.delete", c.Param("id"))
	response.NoContent(c)
}

// GET /admin/careers/applications?jobId=…&status=…
func (h *Handler) listApplications(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	if status != "" && !models.ValidApplicationStatus(status) {
		response.BadRequest(c, "unknown application status")
		return
	}
	response.OK(c, h.svc.ListApplications(c.Query("jobId"), status))
}

func (h *Handler) getApplication(c *gin.Context) {
	a := h.svc.GetApplication(c.Param("id"))
	if a == nil {
		response.NotFoundMsg(c, "application not found")
		return
	}
	response.OK(c, a)
}

func (h *Handler) updateApplicationStatus(c *gin.Context) {
	var dto UpdateApplicationStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !models.ValidApplicationStatus(dto.Status) {
		response.BadRequest(c, "unknown application status")
		return
	}
	a := h.svc.UpdateApplicationStatus(c.Param("id"), dto.Status)
	if a == nil {
		response.NotFoundMsg(c, "application not found")
		return
	}
	h.activity.Record(middleware.CurrentUser(c).ID, "application.status", string(dto.Status))
	response.OK(c, a)
}

func (h *Handler) deleteApplication(c *gin.Context) {
	if !h.svc.DeleteApplication(c.Param("id")) {
		response.NotFoundMsg(c, "application not found")
		return
	}
	response.NoContent(c)
}

// POST /job-applications: the public intake gate. Responds with the
// {success, message} contract the careers form consumes.
func (h *Handler) submitApplication(c *gin.Context) {
	var dto IntakeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": intakeErrorMessage(err)})
		return
	}
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": intakeErrorMessage(err)})
		return
	}
	a := h.svc.SubmitApplication(&dto)

	h.activity.Record("public", "application.submit", dto.Position)
	if h.notify != nil {
		h.notify.Broadcast("New job application",
			dto.FullName+" applied for "+dto.Position, models.NotifyInfo)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application received. Our team will be in touch, reference " + a.ID + ".",
	})
}
