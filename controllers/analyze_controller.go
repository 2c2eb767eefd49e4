package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidthissen1/Nutrify/services"
)

type AnalyzeController struct {
	Gemini *services.GeminiService
}

func NewAnalyzeController(gemini *services.GeminiService) *AnalyzeController {
	return &AnalyzeController{Gemini: gemini}
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// AnalyzeText asks the gateway for a nutrition estimate of a description.
func (a *AnalyzeController) AnalyzeText(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text description provided"})
		return
	}

	result, err := a.Gemini.AnalyzeText(input.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeImage asks the gateway for a nutrition estimate of an uploaded
// food photo.
func (a *AnalyzeController) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image selected"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimeType, ok := imageMimeTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	result, err := a.Gemini.AnalyzeImage(data, mimeType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result)
}
