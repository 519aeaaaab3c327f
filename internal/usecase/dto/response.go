package dto

import "github.com/places-microservice/internal/domain"

// InterpretResponse - результат классификации
type InterpretResponse struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// PlacesResponse - результат поиска мест по категории
type PlacesResponse struct {
	Category string         `json:"category"`
	Results  []domain.Place `json:"results"`
	Location *domain.Point  `json:"location,omitempty"`
}

// CategoriesResponse - закрытый набор категорий для клиентов
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
