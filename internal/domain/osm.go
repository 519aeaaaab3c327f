package domain

// OSMElement - сырая запись Overpass API. Tags - произвольный набор
// ключ/значение без гарантий схемы: любое поле может отсутствовать.
type OSMElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat,omitempty"`
	Lon    float64           `json:"lon,omitempty"`
	Center *Point            `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// OverpassResponse - ответ Overpass API
type OverpassResponse struct {
	Elements []OSMElement `json:"elements"`
}

// Name возвращает тег name или пустую строку
func (e OSMElement) Name() string {
	return e.Tags["name"]
}

// Position возвращает координаты элемента. Для way координаты
// приходят в center (директива out center), для node - напрямую.
func (e OSMElement) Position() (lat, lon float64, ok bool) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon, true
	}
	return 0, 0, false
}
