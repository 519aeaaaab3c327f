package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
)

// QueryBuilder строит Overpass QL запросы по категории и точке.
// Чистые функции без I/O, выполняет запросы клиент.
type QueryBuilder struct {
	timeoutSec int
	radius     int
	looseLimit int
}

func NewQueryBuilder(cfg *config.OverpassConfig) *QueryBuilder {
	return &QueryBuilder{
		timeoutSec: cfg.RequestTimeout,
		radius:     cfg.RadiusMeters,
		looseLimit: cfg.LooseLimit,
	}
}

// Strict строит строгий запрос: amenity-фильтр категории, обязательный
// тег name, node и way. При наличии точки - ограничение радиусом,
// без точки запрос глобальный.
func (b *QueryBuilder) Strict(category domain.Category, point *domain.Point) string {
	filter := domain.RuleFor(category).Filter
	if filter == "" {
		filter = domain.DefaultFilter
	}

	around := b.aroundClause(point)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];(", b.timeoutSec)
	fmt.Fprintf(&sb, `node["amenity"~"%s"]["name"]%s;`, filter, around)
	fmt.Fprintf(&sb, `way["amenity"~"%s"]["name"]%s;`, filter, around)
	sb.WriteString(");out center;")
	return sb.String()
}

// Loose строит расширенный запрос: широкий фильтр категории, без
// требования имени, с лимитом количества на стороне провайдера
func (b *QueryBuilder) Loose(category domain.Category, point *domain.Point) string {
	filter := domain.RuleFor(category).LooseFilter
	if filter == "" {
		filter = domain.DefaultLooseFilter
	}

	around := b.aroundClause(point)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];(", b.timeoutSec)
	fmt.Fprintf(&sb, `node["amenity"~"%s"]%s;`, filter, around)
	fmt.Fprintf(&sb, `way["amenity"~"%s"]%s;`, filter, around)
	fmt.Fprintf(&sb, ");out center %d;", b.looseLimit)
	return sb.String()
}

// aroundClause возвращает ограничение по радиусу или пустую строку.
// Координаты вставляются без округления.
func (b *QueryBuilder) aroundClause(point *domain.Point) string {
	if point == nil {
		return ""
	}
	return fmt.Sprintf("(around:%d,%s,%s)",
		b.radius,
		strconv.FormatFloat(point.Lat, 'f', -1, 64),
		strconv.FormatFloat(point.Lon, 'f', -1, 64),
	)
}
