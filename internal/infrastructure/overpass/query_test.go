package overpass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
)

func testBuilder() *QueryBuilder {
	return NewQueryBuilder(&config.OverpassConfig{
		RequestTimeout: 25,
		RadiusMeters:   5000,
		LooseLimit:     20,
	})
}

func TestQueryBuilder_Strict(t *testing.T) {
	b := testBuilder()

	t.Run("global query without point", func(t *testing.T) {
		query := b.Strict(domain.CategoryFood, nil)

		assert.True(t, strings.HasPrefix(query, "[out:json][timeout:25];("))
		assert.Contains(t, query, `node["amenity"~"restaurant"]["name"];`)
		assert.Contains(t, query, `way["amenity"~"restaurant"]["name"];`)
		assert.True(t, strings.HasSuffix(query, ");out center;"))
		assert.NotContains(t, query, "around")
	})

	t.Run("point adds radius clause with verbatim coordinates", func(t *testing.T) {
		query := b.Strict(domain.CategoryFood, &domain.Point{Lat: -23.5505, Lon: -46.6333})

		assert.Contains(t, query, "(around:5000,-23.5505,-46.6333)")
	})

	t.Run("coordinates are not rounded", func(t *testing.T) {
		query := b.Strict(domain.CategoryFood, &domain.Point{Lat: -23.550519876543, Lon: -46.633309123456})

		assert.Contains(t, query, "-23.550519876543")
		assert.Contains(t, query, "-46.633309123456")
	})

	t.Run("every category produces a name-required query", func(t *testing.T) {
		for _, c := range domain.Categories {
			query := b.Strict(c, nil)
			assert.Contains(t, query, `["name"]`, "category %s", c)
			assert.Contains(t, query, "out center;", "category %s", c)
		}
	})
}

func TestQueryBuilder_Loose(t *testing.T) {
	b := testBuilder()

	t.Run("loose filter without name requirement", func(t *testing.T) {
		query := b.Loose(domain.CategoryDrink, nil)

		assert.Contains(t, query, domain.RuleFor(domain.CategoryDrink).LooseFilter)
		assert.NotContains(t, query, `["name"]`)
		assert.True(t, strings.HasSuffix(query, ");out center 20;"))
	})

	t.Run("point adds radius clause", func(t *testing.T) {
		query := b.Loose(domain.CategoryDrink, &domain.Point{Lat: 10.5, Lon: 20.25})

		assert.Contains(t, query, "(around:5000,10.5,20.25)")
	})

	t.Run("loose filter is broader than strict", func(t *testing.T) {
		for _, c := range domain.Categories {
			query := b.Loose(c, nil)
			assert.NotContains(t, query, `["name"]`, "category %s", c)
		}
	})
}
