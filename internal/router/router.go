package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/techtool/opd-api/internal/handler"
	"github.com/techtool/opd-api/internal/middleware"
	"github.com/techtool/opd-api/internal/model"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine     *gin.Engine
	h          *handler.Handler
	opdH       Handler
	followupH  Handler
	clinicH    Handler
	encounterH Handler
	metrics    *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit       rate.Limit
	RateBurst       int
	RequestTimeout  time.Duration
	SizeLimitConfig middleware.SizeLimitConfig
	CORSConfig      middleware.CORSConfig
	AuthConfig      middleware.BasicAuthConfig
	MetricsPrefix   string
}

// NewRouter assembles the middleware chain and keeps handler registration in
// Setup. encounterH may be nil when the archive is disabled.
func NewRouter(
	h *handler.Handler,
	opdH Handler,
	followupH Handler,
	clinicH Handler,
	encounterH Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()

	engine := gin.New()

	r := &Router{
		engine:     engine,
		h:          h,
		opdH:       opdH,
		followupH:  followupH,
		clinicH:    clinicH,
		encounterH: encounterH,
		metrics:    initRouterMetrics(config.MetricsPrefix),
	}

	config.AuthConfig.SkipPaths = append(config.AuthConfig.SkipPaths, "/healthz", "/metrics")

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
		middleware.CORS(config.CORSConfig),
		middleware.SizeLimit(config.SizeLimitConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())
	engine.Use(middleware.BasicAuth(config.AuthConfig))

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/healthz", r.h.Healthz)
	r.engine.GET("/metrics", r.h.Metrics())

	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.opdH.RegisterRoutes(api)
	r.followupH.RegisterRoutes(api)
	r.clinicH.RegisterRoutes(api)
	if r.encounterH != nil {
		r.encounterH.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidations adds the risklevel binding tag. Registration is
// idempotent; re-registering a tag overwrites it.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("risklevel", func(fl validator.FieldLevel) bool {
		return model.RiskLevel(fl.Field().String()).Valid()
	})
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
