package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/config"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/database"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/markets"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/middleware"
	pkgjwt "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/jwt"
	pkgredis "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/redis"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	logger *zap.Logger
}

// New initializes the application: config, optional Redis, the market-data
// client, then routes. All repository state is process memory seeded at
// construction and lost on restart.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	pkgjwt.SetSecret(cfg.JWTSecret)

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		var err error
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	market, err := buildMarketClient(cfg, rc, logger)
	if err != nil {
		return nil, err
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, originHost(origin))
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{cfg: cfg, router: router, logger: logger}
	app.registerRoutes(rc, market)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

func buildMarketClient(cfg *config.AppConfig, rc *pkgredis.Client, logger *zap.Logger) (markets.Client, error) {
	var client markets.Client
	switch cfg.Markets.Source {
	case "http":
		if cfg.Markets.BaseURL == "" {
			return nil, errors.New("markets: http source requires base_url")
		}
		client = markets.NewHTTPClient(cfg.Markets.BaseURL)
	case "db":
		if cfg.Markets.DSN == "" {
			return nil, errors.New("markets: db source requires dsn")
		}
		db, err := database.Connect(cfg.Markets.DSN, cfg.IsDev())
		if err != nil {
			return nil, err
		}
		client = markets.NewDBClient(db)
	case "static":
		client = markets.NewStaticClient()
	default:
		return nil, fmt.Errorf("markets: unknown source %q", cfg.Markets.Source)
	}
	logger.Info("market data source ready", zap.String("source", cfg.Markets.Source))

	if rc != nil {
		ttl := time.Duration(cfg.Markets.CacheTTLSecs) * time.Second
		client = markets.NewCachedClient(client, rc, ttl)
	}
	return client, nil
}
