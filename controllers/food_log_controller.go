package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidthissen1/Nutrify/middlewares"
	"github.com/davidthissen1/Nutrify/services"
)

type FoodLogController struct {
	Logs *services.FoodLogService
}

func NewFoodLogController(logs *services.FoodLogService) *FoodLogController {
	return &FoodLogController{Logs: logs}
}

func (f *FoodLogController) Create(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	// Bodies are permissive: a malformed or empty body logs an entry with
	// the documented defaults instead of rejecting the request.
	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = services.FoodLogInput{}
	}

	logID, err := f.Logs.Create(userID, input)
	if err != nil {
		log.Printf("create food log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food logged successfully",
		"log_id":  logID,
	})
}

func (f *FoodLogController) List(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	logs, err := f.Logs.List(userID, c.Query("date"))
	if err != nil {
		log.Printf("list food logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (f *FoodLogController) Delete(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	logID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food log entry not found"})
		return
	}

	if err := f.Logs.Delete(userID, uint(logID)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food log entry not found"})
			return
		}
		log.Printf("delete food log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food log deleted successfully"})
}
