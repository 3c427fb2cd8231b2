package app

import (
	"course_platform_backend/docs"
	"course_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		reports := api.Group("/reports")
		{
			trends := reports.Group("/trends")
			{
				trends.GET("/enrollments", c.analytics.GetEnrollmentTrend)
				trends.GET("/completions", c.analytics.GetCompletionTrend)
				trends.GET("/activity", c.analytics.GetActivityTrend)
			}

			courses := reports.Group("/courses")
			{
				courses.GET("/popular", c.analytics.GetPopularCourses)
				courses.GET("/:id/completion-rate", c.analytics.GetCourseCompletion)
				courses.GET("/:id/engagement", c.analytics.GetCourseEngagement)
			}

			students := reports.Group("/students")
			{
				students.GET("/:id/progress", c.student.GetProgress)
				students.GET("/:id/engagement", c.student.GetEngagement)
				students.GET("/:id/streak", c.student.GetStreak)
				students.GET("/:id/recommendations", c.recommendation.GetRecommendations)
				students.GET("/:id/skills-gap", c.recommendation.GetSkillsGap)
			}

			reports.GET("/dashboard", c.dashboard.GetDashboard)
		}
	}
}
