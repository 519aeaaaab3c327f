package domain

// Point - географические координаты (широта/долгота)
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place - нормализованное место. Единое представление для записей
// провайдера и статических данных.
type Place struct {
	Name    string `json:"name"`
	Address string `json:"address"`

	// Rating заполняется только для статических примеров:
	// у OSM нет понятия рейтинга, для данных провайдера всегда null
	Rating *float64 `json:"rating"`

	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// DistanceMeters - расстояние от точки запроса, только при наличии координат
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// SearchResult - результат полного пайплайна: запрос, распознанная
// категория и список мест в порядке выдачи провайдера
type SearchResult struct {
	Query    string   `json:"query"`
	Category Category `json:"category"`
	Results  []Place  `json:"results"`
	Location *Point   `json:"location,omitempty"`
}
