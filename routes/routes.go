package routes

import (
	"github.com/ghada1234/nutritrack/controllers"
	"github.com/ghada1234/nutritrack/middlewares"
	"github.com/ghada1234/nutritrack/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	controllers.InitRealtime(hub)
	rt := controllers.NewRealtimeController(hub)

	// Public: opening a session is the only unauthenticated call.
	r.POST("/session", controllers.StartSession)

	s := r.Group("/")
	s.Use(middlewares.SessionMiddleware())
	{
		// nutrient source adapters
		analyze := s.Group("/analyze")
		{
			analyze.POST("/photo", controllers.AnalyzePhoto)
			analyze.POST("/barcode", controllers.AnalyzeBarcode)
			analyze.POST("/text", controllers.AnalyzeText)
		}

		// session ledger
		s.GET("/log", controllers.ListLog)
		log := s.Group("/log")
		{
			log.POST("/food", controllers.AddFood)
			log.PUT("/food/:id", controllers.UpdateFood)
			log.DELETE("/food/:id", controllers.DeleteFood)
			log.POST("/food/:id/duplicate", controllers.DuplicateFood)

			log.POST("/exercise", controllers.AddExercise)
			log.PUT("/exercise/:id", controllers.UpdateExercise)
			log.DELETE("/exercise/:id", controllers.DeleteExercise)
			log.POST("/exercise/:id/duplicate", controllers.DuplicateExercise)
		}

		s.GET("/summary", controllers.GetSummary)
		s.PUT("/goals", controllers.SetGoals)

		// AI flows
		s.POST("/suggestions", controllers.GetMealSuggestions)
		s.POST("/advice", controllers.GetNutrientAdvice)

		// live summary stream
		s.GET("/ws/summary", rt.SummaryWS)
	}

	return r
}
