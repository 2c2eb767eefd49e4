package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidthissen1/Nutrify/middlewares"
	"github.com/davidthissen1/Nutrify/services"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// NutritionHistory serves the chart data: per-day macro sums over the last
// week or month, zero-filled so every calendar day appears.
func (a *AnalyticsController) NutritionHistory(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	history, err := a.Svc.History(userID, c.DefaultQuery("range", "week"))
	if err != nil {
		log.Printf("nutrition history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, history)
}
