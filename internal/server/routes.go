// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Init swagger doc
	_ "jobboard-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobboard-backend/internal/controller/application"
	"jobboard-backend/internal/controller/company"
	"jobboard-backend/internal/controller/job"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/middleware"
	"jobboard-backend/internal/model"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	if s.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger.Logger),
		middleware.SafeHeader(s.Config.IsProduction()),
		cors.New(cors.Config{
			AllowOrigins:     s.Config.CORS.Origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
		}),
		middleware.Timeout(s.Config.Server.RequestTimeout),
		middleware.SizeLimit(maxBodyBytes),
	)

	limiter, client := middleware.NewRateLimiter(s.Config.RateLimit)
	s.limiterClient = client

	jc := job.NewJobController(s.DB)
	ac := application.NewApplicationController(s.DB, s.Config.Apply.RepeatPolicy)
	cc := company.NewCompanyController(s.DB)

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		// Public filter values
		filters := v1.Group("/job/filters")
		{
			filters.Use(limiter)
			filters.GET("/positions", jc.GetPositions)
			filters.GET("/locations", jc.GetLocations)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB))

			jobRoute := needAuth.Group("/job")
			{
				jobRoute.POST("/post", jc.PostJob)
				jobRoute.GET("/get", jc.GetAllJobs)
				jobRoute.GET("/get/:id", jc.GetJobByID)
				jobRoute.GET("/getAdmin/:id", jc.GetJobByIDAdmin)
				jobRoute.PATCH("/updateJob/:id", jc.UpdateJob)
				jobRoute.DELETE("/deleteJob", jc.DeleteJob)
				jobRoute.GET("/getAdminJob", middleware.CheckRole(model.RoleAdmin), jc.GetAdminJobs)
			}

			companyRoute := needAuth.Group("/company")
			{
				companyRoute.POST("", middleware.CheckRole(model.RoleAdmin), cc.CreateCompany)
				companyRoute.GET("/:company_id", cc.GetCompanyByID)
			}

			applicationRoute := needAuth.Group("/application")
			{
				applicationRoute.GET("/apply/:jobId", ac.ApplyHandler)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}
