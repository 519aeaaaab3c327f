package handler

import (
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
)

// parseLocation проверяет пару координат: либо обе, либо ни одной.
// Половинчатая пара и значения вне диапазона отклоняются здесь,
// ядро пайплайна получает только валидную точку или nil.
func parseLocation(lat, lon *float64) (*domain.Point, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, errors.ErrHalfSpecifiedLocation
	}
	if !utils.ValidateCoordinates(*lat, *lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	return &domain.Point{Lat: *lat, Lon: *lon}, nil
}
