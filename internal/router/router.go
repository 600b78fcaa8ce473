package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/handler/appointment"
	"github.com/healsmart/healsmart-api/internal/handler/auth"
	"github.com/healsmart/healsmart-api/internal/handler/blog"
	"github.com/healsmart/healsmart-api/internal/handler/chat"
	"github.com/healsmart/healsmart-api/internal/handler/dashboard"
	"github.com/healsmart/healsmart-api/internal/handler/doctor"
	"github.com/healsmart/healsmart-api/internal/handler/news"
	"github.com/healsmart/healsmart-api/internal/handler/predict"
	"github.com/healsmart/healsmart-api/internal/middleware"
	"github.com/healsmart/healsmart-api/internal/model"
)

type Handlers struct {
	Base        *handler.Handler
	Auth        *auth.Handler
	Appointment *appointment.Handler
	Doctor      *doctor.Handler
	Predict     *predict.Handler
	News        *news.Handler
	Chat        *chat.Handler
	Blog        *blog.Handler
	Dashboard   *dashboard.Handler
}

type RouterConfig struct {
	RateLimit  rate.Limit
	RateBurst  int
	Timeout    time.Duration
	CORSConfig middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
	metrics  *routerMetrics
}

func NewRouter(authMW *middleware.AuthMiddleware, handlers Handlers, config RouterConfig) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     authMW,
		handlers: handlers,
		metrics:  newRouterMetrics(),
	}

	if config.Timeout <= 0 {
		config.Timeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)

	doctorOnly := api.Group("")
	doctorOnly.Use(r.auth.Authenticate(), r.auth.RequireRole(model.RoleDoctor))
	r.setupDoctorRoutes(doctorOnly)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.handlers.Base.LivenessCheck)
		health.GET("/ready", r.handlers.Base.ReadinessCheck)
		health.GET("/metrics", r.handlers.Base.MetricsHandler)
	}
}

// Public routes serve unauthenticated visitors: signup and login, the
// doctor directory, symptom prediction, appointment requests, news, and
// blog reading.
func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.handlers.Auth.RegisterRoutes(rg.Group("/auth"))
	r.handlers.Doctor.RegisterPublicRoutes(rg.Group("/doctor"))
	r.handlers.Appointment.RegisterPublicRoutes(rg.Group("/appointments"))
	r.handlers.Predict.RegisterPublicRoutes(rg)
	r.handlers.News.RegisterRoutes(rg.Group("/news"))
	r.handlers.Blog.RegisterPublicRoutes(rg.Group("/blogs"))
}

// Protected routes need a valid token of either role.
func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.handlers.Predict.RegisterProtectedRoutes(rg)
	r.handlers.Blog.RegisterProtectedRoutes(rg.Group("/blogs"))
	r.handlers.Chat.RegisterRoutes(rg)
	r.handlers.Dashboard.RegisterRoutes(rg)
}

// Doctor routes serve the appointment inbox and the doctor's own profile.
func (r *Router) setupDoctorRoutes(rg *gin.RouterGroup) {
	r.handlers.Appointment.RegisterDoctorRoutes(rg.Group("/appointments"))
	r.handlers.Doctor.RegisterDoctorRoutes(rg.Group("/doctor"))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func newRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "healsmart_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healsmart_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
