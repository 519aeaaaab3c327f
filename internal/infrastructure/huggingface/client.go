package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *zap.Logger
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

type inferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

// NewClient создаёт удалённый классификатор поверх HuggingFace
// Inference API. Ошибки вызова - мягкие: оркестратор переходит
// к локальной классификации.
func NewClient(cfg *config.ClassifierConfig, logger *zap.Logger) repository.IntentClassifier {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		logger:  logger,
	}
}

func (c *client) Classify(ctx context.Context, query string) (domain.Category, error) {
	reqBody := inferenceRequest{
		Inputs: domain.ClassificationPrompt(query),
		Parameters: inferenceParameters{
			MaxLength:   20,
			Temperature: 0.1,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Inference API request failed", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("Inference API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", fmt.Errorf("inference API error: status %d", resp.StatusCode)
	}

	var results []inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", fmt.Errorf("inference API returned empty response")
	}

	// Ответ совещательный: матчим обратно в закрытый набор
	answer := strings.ToLower(strings.TrimSpace(results[0].GeneratedText))
	category, ok := domain.MatchIndicators(answer)
	if !ok {
		return "", fmt.Errorf("classification %q did not match any category", answer)
	}

	c.logger.Debug("Remote classification succeeded",
		zap.String("answer", answer),
		zap.String("category", string(category)))

	return category, nil
}
