package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/markets"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/auth"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/careers"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/content/page"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/content/slide"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/dashboard"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/notification"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/settings"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/storage/media"
	pkgredis "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/redis"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client, market markets.Client) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "tesah-capital-website",
		"version": "1.0.0",
	}

	r.Static("/static", a.cfg.Paths.Static)

	api := r.Group("/api")

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	// Shared services. Repositories own their collections exclusively;
	// handlers only see the service surface.
	activitySvc := activity.NewService()
	authSvc := auth.NewService(a.cfg)
	notifySvc := notification.NewService(authSvc.AdminUserID())
	slideSvc := slide.NewService()
	mediaSvc := media.NewService()
	careersSvc := careers.NewService()
	settingsSvc := settings.NewService()
	pageSvc := page.NewService()
	dashboardSvc := dashboard.NewService(market, activitySvc, notifySvc, mediaSvc, careersSvc)

	var intakeMW gin.HandlerFunc
	if rc != nil {
		intakeMW = middleware.IntakeRateLimit(rc.Raw())
	}

	auth.NewHandler(authSvc, activitySvc).RegisterRoutes(api, authMW)
	slide.NewHandler(slideSvc, activitySvc).RegisterRoutes(api, authMW)
	page.NewHandler(pageSvc, activitySvc).RegisterRoutes(api, authMW)
	media.NewHandler(mediaSvc, activitySvc).RegisterRoutes(api, authMW)
	careers.NewHandler(careersSvc, activitySvc, notifySvc, intakeMW).RegisterRoutes(api, authMW)
	activity.NewHandler(activitySvc).RegisterRoutes(api, authMW)
	notification.NewHandler(notifySvc).RegisterRoutes(api, authMW)
	settings.NewHandler(settingsSvc, activitySvc).RegisterRoutes(api, authMW)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api, authMW)
}

var processStart = time.Now()
