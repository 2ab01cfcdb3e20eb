package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haemolab/lab-api/internal/handler"
	"github.com/haemolab/lab-api/internal/middleware"
	"github.com/haemolab/lab-api/pkg/metrics"
)

// Handler is anything that can mount its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitPerSecond float64
	RateLimitBurst     int
	CORS               middleware.CORSConfig
}

type Router struct {
	engine  *gin.Engine
	auth    *middleware.AuthMiddleware
	authH   Handler
	healthH *handler.HealthHandler

	protected []Handler
}

func New(
	auth *middleware.AuthMiddleware,
	authH Handler,
	healthH *handler.HealthHandler,
	m *metrics.Metrics,
	cfg Config,
	protected ...Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	registerValidators()

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	engine.Use(limiter.RateLimit())

	return &Router{
		engine:    engine,
		auth:      auth,
		authH:     authH,
		healthH:   healthH,
		protected: protected,
	}
}

func (r *Router) Setup() {
	r.engine.GET("/healthz", r.healthH.Live)
	r.engine.GET("/readyz", r.healthH.Ready)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	// Public routes: login, refresh, password reset.
	r.authH.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	for _, h := range r.protected {
		h.RegisterRoutes(protected)
	}
	if ph, ok := r.authH.(interface{ RegisterProtectedRoutes(*gin.RouterGroup) }); ok {
		ph.RegisterProtectedRoutes(protected)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
