package usecase

import (
	"context"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// LocalClassifier - лексическая классификация без сетевых вызовов.
// Тотальная функция: всегда возвращает категорию, никогда не ошибается.
type LocalClassifier struct {
	logger *zap.Logger
}

func NewLocalClassifier(logger *zap.Logger) repository.IntentClassifier {
	return &LocalClassifier{logger: logger}
}

// Classify проверяет текст сначала по ключевым словам всех категорий,
// затем по фразам действий, в фиксированном порядке перебора.
// Без совпадений возвращается категория по умолчанию.
func (c *LocalClassifier) Classify(_ context.Context, query string) (domain.Category, error) {
	if category, ok := domain.MatchIndicators(query); ok {
		return category, nil
	}

	if category, ok := domain.MatchActions(query); ok {
		return category, nil
	}

	c.logger.Debug("No lexical match, using default category",
		zap.String("query", query),
		zap.String("category", string(domain.DefaultCategory)))

	return domain.DefaultCategory, nil
}
