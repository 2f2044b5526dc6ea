package v1

import (
	"net/http"
	"time"

	"go-refolio-backend/config"
	"go-refolio-backend/internal/delivery/http/middleware"
	"go-refolio-backend/internal/delivery/http/response"
	"go-refolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	PipelineUC domain.ResumePipelineUsecase
	AnalysisUC domain.TimelineAnalysisUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.MaxMultipartMemory = int64(deps.Config.MaxUploadSizeMB) << 20

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(
		deps.Config.RateLimitUploadThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	NewResumeHandler(v1, uploadLimiter, deps.PipelineUC)
	NewAnalysisHandler(v1, deps.AnalysisUC)

	return r
}
