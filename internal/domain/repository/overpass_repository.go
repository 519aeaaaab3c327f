package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// OverpassRepository определяет доступ к геоданным Overpass API
type OverpassRepository interface {
	// SearchStrict выполняет строгий запрос: только именованные
	// node/way с amenity-фильтром категории, радиус при наличии точки
	SearchStrict(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.OSMElement, error)

	// SearchLoose выполняет расширенный запрос: широкий amenity-фильтр,
	// без требования имени, с ограничением количества на стороне провайдера
	SearchLoose(ctx context.Context, category domain.Category, point *domain.Point) ([]domain.OSMElement, error)
}
