package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	builder    *QueryBuilder
	logger     *zap.Logger
}

// NewClient создаёт новый клиент для Overpass API
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.OverpassRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		builder: NewQueryBuilder(cfg),
		logger:  logger,
	}
}

// SearchStrict выполняет строгий запрос (только именованные объекты)
func (c *client) SearchStrict(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.OSMElement, error) {
	return c.execute(ctx, c.builder.Strict(category, point), "strict")
}

// SearchLoose выполняет расширенный запрос без требования имени
func (c *client) SearchLoose(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.OSMElement, error) {
	return c.execute(ctx, c.builder.Loose(category, point), "loose")
}

func (c *client) execute(ctx context.Context, query, mode string) ([]domain.OSMElement, error) {
	reqURL := fmt.Sprintf("%s/api/interpreter?data=%s", c.baseURL, url.QueryEscape(query))

	c.logger.Debug("Calling Overpass API",
		zap.String("mode", mode),
		zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("mode", mode), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.String("mode", mode),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d", resp.StatusCode)
	}

	var overpassResp domain.OverpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.String("mode", mode), zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Overpass API call successful",
		zap.String("mode", mode),
		zap.Int("elements", len(overpassResp.Elements)))

	return overpassResp.Elements, nil
}
