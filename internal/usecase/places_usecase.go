package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
)

// stageStatus - типизированный исход этапа поиска
type stageStatus int

const (
	stageHit    stageStatus = iota // этап вернул данные
	stageEmpty                     // провайдер ответил, но пригодных записей нет
	stageFailed                    // транспортная ошибка или нечитаемый ответ
)

// PlacesUseCase - оркестратор трёхэтапного поиска мест:
// строгий запрос -> loose запрос -> статические примеры.
// Тотальная функция: каждый отказ переводит на следующий этап,
// статический этап провалиться не может.
type PlacesUseCase struct {
	overpassRepo repository.OverpassRepository
	cacheRepo    repository.CacheRepository // nil, если кеш отключён
	logger       *zap.Logger
	cacheTTL     time.Duration
	resultLimit  int
}

func NewPlacesUseCase(
	overpassRepo repository.OverpassRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	resultLimit int,
) *PlacesUseCase {
	return &PlacesUseCase{
		overpassRepo: overpassRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
		resultLimit:  resultLimit,
	}
}

// Search возвращает места для категории. Список всегда непустой:
// при недоступности провайдера возвращаются статические примеры.
func (uc *PlacesUseCase) Search(ctx context.Context, category domain.Category, point *domain.Point) []domain.Place {
	if cached, ok := uc.cacheGet(ctx, category, point); ok {
		return cached
	}

	places, status := uc.strictStage(ctx, category, point)
	if status == stageHit {
		uc.cacheSet(ctx, category, point, places)
		return places
	}

	// Loose этап только после пустого строгого результата;
	// транспортная ошибка строгого этапа сразу ведёт к статике
	if status == stageEmpty {
		places, status = uc.looseStage(ctx, category, point)
		if status == stageHit {
			uc.cacheSet(ctx, category, point, places)
			return places
		}
	}

	uc.logger.Info("Falling back to static example data",
		zap.String("category", string(category)))

	return domain.ExamplePlaces(category)
}

// strictStage выполняет строгий запрос и отбрасывает записи без имени
func (uc *PlacesUseCase) strictStage(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.Place, stageStatus) {
	elements, err := uc.overpassRepo.SearchStrict(ctx, category, point)
	if err != nil {
		uc.logger.Warn("Strict search stage failed",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, stageFailed
	}

	places := make([]domain.Place, 0, uc.resultLimit)
	for _, el := range elements {
		if el.Name() == "" {
			continue
		}
		places = append(places, NormalizePlace(el, point))
		if len(places) == uc.resultLimit {
			break
		}
	}

	if len(places) == 0 {
		uc.logger.Debug("Strict stage returned no named places",
			zap.String("category", string(category)),
			zap.Int("raw_elements", len(elements)))
		return nil, stageEmpty
	}

	return places, stageHit
}

// looseStage выполняет расширенный запрос; безымянные записи получают
// имя-заглушку вместо отбрасывания
func (uc *PlacesUseCase) looseStage(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.Place, stageStatus) {
	elements, err := uc.overpassRepo.SearchLoose(ctx, category, point)
	if err != nil {
		uc.logger.Warn("Loose search stage failed",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, stageFailed
	}

	if len(elements) == 0 {
		return nil, stageEmpty
	}

	places := make([]domain.Place, 0, uc.resultLimit)
	for _, el := range elements {
		places = append(places, NormalizeLoosePlace(el, point))
		if len(places) == uc.resultLimit {
			break
		}
	}

	return places, stageHit
}

func (uc *PlacesUseCase) cacheKey(category domain.Category, point *domain.Point) string {
	if point == nil {
		return fmt.Sprintf("places:%s:global", category)
	}
	return fmt.Sprintf("places:%s:%f:%f", category, point.Lat, point.Lon)
}

func (uc *PlacesUseCase) cacheGet(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.Place, bool) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return nil, false
	}

	data, err := uc.cacheRepo.Get(ctx, uc.cacheKey(category, point))
	if err != nil || data == nil {
		return nil, false
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		uc.logger.Warn("Failed to unmarshal cached places", zap.Error(err))
		return nil, false
	}

	return places, true
}

func (uc *PlacesUseCase) cacheSet(ctx context.Context, category domain.Category, point *domain.Point, places []domain.Place) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(places)
	if err != nil {
		return
	}

	if err := uc.cacheRepo.Set(ctx, uc.cacheKey(category, point), data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache places", zap.Error(err))
	}
}
