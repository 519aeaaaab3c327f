package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/places-microservice/internal/domain"
)

func TestExamplePlaces(t *testing.T) {
	t.Run("every category yields a non-empty list", func(t *testing.T) {
		for _, c := range domain.Categories {
			places := domain.ExamplePlaces(c)
			require.NotEmpty(t, places, "category %s", c)

			for _, p := range places {
				assert.NotEmpty(t, p.Name)
				assert.NotEmpty(t, p.Address)
				assert.NotNil(t, p.Rating, "static examples carry ratings")
			}
		}
	})

	t.Run("curated categories have four entries", func(t *testing.T) {
		for _, c := range []domain.Category{
			domain.CategoryFood,
			domain.CategoryDrink,
			domain.CategoryLeisure,
			domain.CategoryEntertainment,
			domain.CategoryShopping,
		} {
			assert.Len(t, domain.ExamplePlaces(c), 4, "category %s", c)
		}
	})

	t.Run("uncurated categories reuse the food list", func(t *testing.T) {
		assert.Equal(t, domain.ExamplePlaces(domain.CategoryFood), domain.ExamplePlaces(domain.CategoryWorship))
		assert.Equal(t, domain.ExamplePlaces(domain.CategoryFood), domain.ExamplePlaces(domain.CategoryTransport))
	})

	t.Run("returns a copy", func(t *testing.T) {
		first := domain.ExamplePlaces(domain.CategoryFood)
		first[0].Name = "mutated"

		second := domain.ExamplePlaces(domain.CategoryFood)
		assert.NotEqual(t, "mutated", second[0].Name)
	})
}
