package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
)

// InterpretUseCase - оркестратор классификации намерения.
// Сначала удалённая стратегия с ограниченным ожиданием, при любом
// отказе - локальная лексическая. Результат всегда из закрытого набора.
type InterpretUseCase struct {
	remote        repository.IntentClassifier // nil, если удалённый классификатор отключён
	local         repository.IntentClassifier
	logger        *zap.Logger
	remoteTimeout time.Duration
}

func NewInterpretUseCase(
	remote repository.IntentClassifier,
	local repository.IntentClassifier,
	logger *zap.Logger,
	remoteTimeout time.Duration,
) *InterpretUseCase {
	return &InterpretUseCase{
		remote:        remote,
		local:         local,
		logger:        logger,
		remoteTimeout: remoteTimeout,
	}
}

// Interpret классифицирует текст запроса. Никогда не падает:
// отказ удалённого сервиса логируется и поглощается, без ретраев.
func (uc *InterpretUseCase) Interpret(ctx context.Context, query string) domain.Category {
	if uc.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, uc.remoteTimeout)
		category, err := uc.remote.Classify(remoteCtx, query)
		cancel()

		if err == nil {
			return category
		}

		uc.logger.Warn("Remote classification failed, falling back to local",
			zap.String("query", query),
			zap.Error(err))
	}

	category, _ := uc.local.Classify(ctx, query)
	return category
}
