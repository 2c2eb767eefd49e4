package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/davidthissen1/Nutrify/config"
	"github.com/davidthissen1/Nutrify/controllers"
	"github.com/davidthissen1/Nutrify/middlewares"
	"github.com/davidthissen1/Nutrify/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	authSvc := services.NewAuthService(db, cfg.SecretKey, cfg.EnforceTokenExpiry)
	logSvc := services.NewFoodLogService(db)
	analyticsSvc := services.NewAnalyticsService(db)
	goalSvc := services.NewGoalService(db)
	geminiSvc := services.NewGeminiService(cfg.GeminiAPIKey)

	auth := controllers.NewAuthController(authSvc)
	user := controllers.NewUserController()
	foodLogs := controllers.NewFoodLogController(logSvc)
	analytics := controllers.NewAnalyticsController(analyticsSvc)
	analyze := controllers.NewAnalyzeController(geminiSvc)
	goals := controllers.NewGoalController(goalSvc)

	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.POST("/food/analyze-text", analyze.AnalyzeText)
		api.POST("/food/analyze-image", analyze.AnalyzeImage)
	}

	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware(authSvc))
	{
		protected.GET("/user", user.GetUser)
		protected.POST("/food-logs", foodLogs.Create)
		protected.GET("/food-logs", foodLogs.List)
		protected.DELETE("/food-logs/:id", foodLogs.Delete)
		protected.GET("/nutrition-history", analytics.NutritionHistory)
		protected.GET("/nutrition-goals", goals.GetGoals)
		protected.PUT("/nutrition-goals", goals.UpdateGoals)
	}

	return r
}
