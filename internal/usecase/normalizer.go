package usecase

import (
	"fmt"
	"strings"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/utils"
)

// Маркеры для записей без адресных полей
const (
	addressUnavailable = "Endereço não disponível"
	addressSeeWebsite  = "Ver site para endereço"
)

// Теги структурированного адреса в порядке сборки
var addressTags = []string{
	"addr:street",
	"addr:housenumber",
	"addr:suburb",
	"addr:place",
	"addr:city",
	"addr:state",
}

// NormalizePlace преобразует сырую запись провайдера в Place.
// Строгий режим: имя берётся как есть (записи без имени отбрасывает
// оркестратор). Rating для данных провайдера всегда null.
func NormalizePlace(el domain.OSMElement, origin *domain.Point) domain.Place {
	place := domain.Place{
		Name:    el.Name(),
		Address: BuildAddress(el.Tags),
		Phone:   el.Tags["phone"],
		Website: el.Tags["website"],
	}

	attachDistance(&place, el, origin)
	return place
}

// NormalizeLoosePlace преобразует запись loose-этапа: для безымянных
// записей синтезируется имя-заглушка по типу объекта. Асимметрия со
// строгим этапом намеренная - это документированное поведение fallback.
func NormalizeLoosePlace(el domain.OSMElement, origin *domain.Point) domain.Place {
	place := NormalizePlace(el, origin)
	if place.Name == "" {
		place.Name = synthesizeName(el.Tags)
	}
	return place
}

// BuildAddress собирает адресную строку из доступных тегов.
// Приоритет: структурированные компоненты -> addr:full -> почтовый
// индекс -> подсказка телефон/сайт -> маркер недоступности.
func BuildAddress(tags map[string]string) string {
	if len(tags) == 0 {
		return addressUnavailable
	}

	var parts []string
	for _, tag := range addressTags {
		if v := tags[tag]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	if full := tags["addr:full"]; full != "" {
		return full
	}
	if postcode := tags["addr:postcode"]; postcode != "" {
		return fmt.Sprintf("CEP: %s", postcode)
	}
	if phone := tags["phone"]; phone != "" {
		return fmt.Sprintf("Tel: %s", phone)
	}
	if tags["website"] != "" {
		return addressSeeWebsite
	}

	return addressUnavailable
}

// synthesizeName строит имя-заглушку из типового тега записи
func synthesizeName(tags map[string]string) string {
	for _, tag := range []string{"amenity", "tourism", "shop"} {
		if v := tags[tag]; v != "" {
			return fmt.Sprintf("Lugar %s", v)
		}
	}
	return "Lugar sem nome"
}

// attachDistance вычисляет расстояние от точки запроса в метрах,
// когда известны и точка, и позиция записи
func attachDistance(place *domain.Place, el domain.OSMElement, origin *domain.Point) {
	if origin == nil {
		return
	}

	lat, lon, ok := el.Position()
	if !ok {
		return
	}

	distance := utils.HaversineDistanceMeters(origin.Lat, origin.Lon, lat, lon)
	place.DistanceMeters = &distance
}
