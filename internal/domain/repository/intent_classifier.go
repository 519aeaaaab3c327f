package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// IntentClassifier определяет стратегию классификации текста запроса
// в категорию. Две реализации: удалённая (LLM / inference API) и
// локальная (лексическая). Оркестратор комбинирует их с fallback.
type IntentClassifier interface {
	// Classify возвращает категорию из закрытого набора.
	// Удалённые реализации могут вернуть ошибку - она означает мягкий
	// отказ и переход к следующей стратегии, локальная не ошибается.
	Classify(ctx context.Context, query string) (domain.Category, error)
}
