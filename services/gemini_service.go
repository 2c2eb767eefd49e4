package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel          = "gemini-1.5-flash"
)

// GeminiService asks the Gemini API for structured nutrition estimates.
// It is a thin pass-through: no retries, no rate limiting, one request
// per analysis with the client's timeout as the only bound.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NutritionEstimate is the structured result the model is prompted to emit.
type NutritionEstimate struct {
	FoodName      string  `json:"food_name"`
	PortionSize   string  `json:"portion_size,omitempty"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// AnalysisResult mirrors the gateway contract consumers expect: either
// success with data, or a failure message to surface verbatim.
type AnalysisResult struct {
	Success bool               `json:"success"`
	Data    *NutritionEstimate `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}

const nutritionPrompt = `Analyze the following food and respond with only a JSON object
containing these keys: food_name (string), portion_size (string),
calories (number), protein (number, grams), carbohydrates (number, grams),
fat (number, grams). No commentary.`

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AnalyzeText estimates nutrition for a free-form food description.
func (s *GeminiService) AnalyzeText(description string) (*AnalysisResult, error) {
	parts := []geminiPart{
		{Text: nutritionPrompt},
		{Text: "Food description: " + description},
	}
	return s.generate(parts)
}

// AnalyzeImage estimates nutrition for a food photo.
func (s *GeminiService) AnalyzeImage(image []byte, mimeType string) (*AnalysisResult, error) {
	parts := []geminiPart{
		{Text: nutritionPrompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}
	return s.generate(parts)
}

func (s *GeminiService) generate(parts []geminiPart) (*AnalysisResult, error) {
	var req geminiRequest
	req.Contents = make([]struct {
		Parts []geminiPart `json:"parts"`
	}, 1)
	req.Contents[0].Parts = parts

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Gemini payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, geminiModel, s.apiKey)
	resp, err := s.client.Post(u, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Gemini response: %w", err)
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("gemini API error %d", resp.StatusCode)
		if gr.Error != nil && gr.Error.Message != "" {
			msg = gr.Error.Message
		}
		return &AnalysisResult{Success: false, Error: msg}, nil
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return &AnalysisResult{Success: false, Error: "no analysis returned by model"}, nil
	}

	estimate, err := parseEstimate(gr.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return &AnalysisResult{Success: false, Error: err.Error()}, nil
	}
	return &AnalysisResult{Success: true, Data: estimate}, nil
}

// parseEstimate strips markdown code fences the model tends to wrap its
// JSON in, then unmarshals the estimate.
func parseEstimate(text string) (*NutritionEstimate, error) {
	cleaned := strings.TrimSpace(text)
	if strings.Contains(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
		cleaned = strings.TrimSpace(cleaned)
	}

	var est NutritionEstimate
	if err := json.Unmarshal([]byte(cleaned), &est); err != nil {
		return nil, fmt.Errorf("could not parse model output as nutrition data: %w", err)
	}
	return &est, nil
}
