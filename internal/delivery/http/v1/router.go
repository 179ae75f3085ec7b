package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/metrics"
	"go-portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC        domain.ProfileUsecase
	ExperienceUC     domain.WorkExperienceUsecase
	SkillUC          domain.SkillUsecase
	EducationUC      domain.EducationUsecase
	ProjectUC        domain.ProjectUsecase
	CertificationUC  domain.CertificationUsecase
	TrainingUC       domain.AdditionalTrainingUsecase
	SocialNetworkUC  domain.SocialNetworkUsecase
	ToolUC           domain.ToolUsecase
	ContactInfoUC    domain.ContactInformationUsecase
	ContactMessageUC domain.ContactMessageUsecase
	CVUC             domain.CVUsecase
	HealthUC         usecase.HealthUsecase
	Metrics          *metrics.Collector
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(deps.Metrics.Instrument())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	// Prometheus scrape endpoint, outside the versioned API
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, "Health check", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mutations require the admin token; reads stay public.
	protected := v1.Group("")
	protected.Use(middleware.AdminAuth(deps.Config))

	NewProfileHandler(v1, protected, deps.ProfileUC)
	NewContactInfoHandler(v1, protected, deps.ContactInfoUC)
	NewCVHandler(v1, deps.CVUC)

	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewContactMessageHandler(v1, protected, deps.ContactMessageUC, deps.Metrics, contactLimit)

	RegisterCollection[*domain.WorkExperience, domain.WorkExperienceInput, domain.WorkExperiencePatch](
		v1, protected, "experiences", "Work experience", deps.ExperienceUC, deps.Metrics)
	RegisterCollection[*domain.Skill, domain.SkillInput, domain.SkillPatch](
		v1, protected, "skills", "Skill", deps.SkillUC, deps.Metrics)
	RegisterCollection[*domain.Education, domain.EducationInput, domain.EducationPatch](
		v1, protected, "education", "Education entry", deps.EducationUC, deps.Metrics)
	RegisterCollection[*domain.Project, domain.ProjectInput, domain.ProjectPatch](
		v1, protected, "projects", "Project", deps.ProjectUC, deps.Metrics)
	RegisterCollection[*domain.Certification, domain.CertificationInput, domain.CertificationPatch](
		v1, protected, "certifications", "Certification", deps.CertificationUC, deps.Metrics)
	RegisterCollection[*domain.AdditionalTraining, domain.AdditionalTrainingInput, domain.AdditionalTrainingPatch](
		v1, protected, "training", "Training", deps.TrainingUC, deps.Metrics)
	RegisterCollection[*domain.SocialNetwork, domain.SocialNetworkInput, domain.SocialNetworkPatch](
		v1, protected, "social-networks", "Social network", deps.SocialNetworkUC, deps.Metrics)
	RegisterCollection[*domain.Tool, domain.ToolInput, domain.ToolPatch](
		v1, protected, "tools", "Tool", deps.ToolUC, deps.Metrics)

	return r
}
