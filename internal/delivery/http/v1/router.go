package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	EmailRepo        domain.EmailRepository
	IndustryTypeRepo domain.IndustryTypeRepository
	StatusRepo       domain.StatusRepository
	PersonNameRepo   domain.PersonNameRepository
	UserRepo         domain.UserRepository
	Validate         *validator.Validate
	AuthUC           domain.AuthUsecase
	HealthUC         domain.HealthUsecase
	RateLimiter      *middleware.RateLimiter // nil disables rate limiting
	Logger           *zap.Logger
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Logger))

	var loginRate gin.HandlerFunc
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindow)))
		loginRate = deps.RateLimiter.Middleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, deps.Config.RateLimitWindow))
	}

	api := r.Group("/api/v1")

	NewHealthHandler(api, deps.HealthUC, deps.Logger)

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewEmailHandler(api, deps.EmailRepo, deps.Validate, deps.Logger)
	NewIndustryTypeHandler(api, deps.IndustryTypeRepo, deps.Validate, deps.Logger)
	NewStatusHandler(api, deps.StatusRepo, deps.Validate, deps.Logger)
	NewPersonNameHandler(api, deps.PersonNameRepo, deps.Validate, deps.Logger)
	NewAccountHandler(api, deps.UserRepo, deps.Validate, AccountRoutes{
		AuthUC:    deps.AuthUC,
		LoginRate: loginRate,
		Log:       deps.Logger,
	})

	return r
}
