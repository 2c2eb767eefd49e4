package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidthissen1/Nutrify/middlewares"
	"github.com/davidthissen1/Nutrify/services"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (g *GoalController) GetGoals(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	goal, err := g.Goals.Get(userID)
	if err != nil {
		log.Printf("get goals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goal})
}

type goalInput struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (g *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	goal, err := g.Goals.Upsert(userID, input.Calories, input.Protein, input.Carbs, input.Fats)
	if err != nil {
		log.Printf("update goals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Goals updated successfully",
		"goals":   goal,
	})
}
