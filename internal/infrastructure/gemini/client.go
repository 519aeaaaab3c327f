package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type client struct {
	genaiClient *genai.Client
	model       string
	logger      *zap.Logger
}

// NewClient создаёт удалённый классификатор поверх Gemini API.
// Альтернатива HuggingFace клиенту, выбирается через CLASSIFIER_PROVIDER.
func NewClient(ctx context.Context, cfg *config.ClassifierConfig, logger *zap.Logger) (repository.IntentClassifier, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &client{
		genaiClient: genaiClient,
		model:       cfg.GeminiModel,
		logger:      logger,
	}, nil
}

func (c *client) Classify(ctx context.Context, query string) (domain.Category, error) {
	prompt := domain.ClassificationPrompt(query)

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(prompt),
			},
		},
	}, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	})
	if err != nil {
		c.logger.Warn("Gemini request failed", zap.Error(err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(resp.Text()))
	if answer == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	// Ответ совещательный: матчим обратно в закрытый набор
	category, ok := domain.MatchIndicators(answer)
	if !ok {
		return "", fmt.Errorf("classification %q did not match any category", answer)
	}

	c.logger.Debug("Remote classification succeeded",
		zap.String("answer", answer),
		zap.String("category", string(category)))

	return category, nil
}
