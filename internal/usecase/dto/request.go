package dto

// InterpretRequest - запрос на классификацию текста
type InterpretRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// PlacesRequest - запрос на поиск мест по категории.
// Координаты опциональны, но только парой: lat без lon (и наоборот)
// отклоняется на HTTP границе.
type PlacesRequest struct {
	Category string   `json:"category" validate:"required"`
	Lat      *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

// SearchRequest - составной запрос: классификация + поиск мест
type SearchRequest struct {
	Query string   `json:"query" validate:"required,min=1"`
	Lat   *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon   *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}
