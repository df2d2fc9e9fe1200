package v1

import (
	"net/http"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ProjectUC domain.ProjectUsecase
	HealthUC  usecase.HealthUsecase
	Redis     *goredis.Client // Optional; rate limiting falls back to memory
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Client IPs key the rate limiter, so X-Forwarded-For is only honoured from configured proxies
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		logger.Log.Warn("Invalid TRUSTED_PROXIES, trusting no proxies", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.ContactRateLimit,
		time.Duration(deps.Config.ContactRateLimitWindowSeconds)*time.Second,
		deps.Redis,
	))
	NewContactHandler(v1, deps.ContactUC, contactLimit)
	NewProjectHandler(v1, deps.ProjectUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
