package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/places-microservice/internal/domain"
)

func TestCategories_ClosedSet(t *testing.T) {
	require.Len(t, domain.Categories, 10)

	expected := []domain.Category{
		domain.CategoryFood,
		domain.CategoryDrink,
		domain.CategoryEntertainment,
		domain.CategoryLeisure,
		domain.CategoryShopping,
		domain.CategoryLodging,
		domain.CategoryTransport,
		domain.CategoryHealth,
		domain.CategoryEducation,
		domain.CategoryWorship,
	}

	// Порядок перебора фиксирован - от него зависит tie-break классификации
	assert.Equal(t, expected, domain.Categories)
}

func TestRuleFor_EveryCategoryHasRules(t *testing.T) {
	for _, c := range domain.Categories {
		rule := domain.RuleFor(c)
		assert.NotEmpty(t, rule.Indicators, "category %s must have indicators", c)
		assert.NotEmpty(t, rule.Actions, "category %s must have action phrases", c)
		assert.NotEmpty(t, rule.Filter, "category %s must have a strict filter", c)
		assert.NotEmpty(t, rule.LooseFilter, "category %s must have a loose filter", c)
	}
}

func TestRuleFor_UnmappedCategoryDefaults(t *testing.T) {
	rule := domain.RuleFor(domain.Category("unknown"))
	assert.Equal(t, domain.DefaultFilter, rule.Filter)
	assert.Equal(t, domain.DefaultLooseFilter, rule.LooseFilter)
	assert.Empty(t, rule.Indicators)
}

func TestParseCategory(t *testing.T) {
	t.Run("valid categories", func(t *testing.T) {
		for _, c := range domain.Categories {
			parsed, ok := domain.ParseCategory(string(c))
			require.True(t, ok)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		parsed, ok := domain.ParseCategory("  Food ")
		require.True(t, ok)
		assert.Equal(t, domain.CategoryFood, parsed)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, ok := domain.ParseCategory("nightlife")
		assert.False(t, ok)

		_, ok = domain.ParseCategory("")
		assert.False(t, ok)
	})
}

func TestMatchIndicators(t *testing.T) {
	t.Run("matches portuguese keywords", func(t *testing.T) {
		category, ok := domain.MatchIndicators("procuro uma pizzaria perto de casa")
		require.True(t, ok)
		assert.Equal(t, domain.CategoryFood, category)
	})

	t.Run("matches remote classifier answers", func(t *testing.T) {
		// Каждое португальское название категории матчится в свою категорию
		answers := map[string]domain.Category{
			"comida":         domain.CategoryFood,
			"bebida":         domain.CategoryDrink,
			"entretenimento": domain.CategoryEntertainment,
			"lazer":          domain.CategoryLeisure,
			"compras":        domain.CategoryShopping,
			"hospedagem":     domain.CategoryLodging,
			"transporte":     domain.CategoryTransport,
			"saúde":          domain.CategoryHealth,
			"educação":       domain.CategoryEducation,
			"religião":       domain.CategoryWorship,
		}

		for answer, expected := range answers {
			category, ok := domain.MatchIndicators(answer)
			require.True(t, ok, "answer %q must match", answer)
			assert.Equal(t, expected, category, "answer %q", answer)
		}
	})

	t.Run("first category wins on multiple matches", func(t *testing.T) {
		// "restaurante" (food) и "bar" (drink) - food идёт раньше
		category, ok := domain.MatchIndicators("restaurante ou bar")
		require.True(t, ok)
		assert.Equal(t, domain.CategoryFood, category)
	})

	t.Run("case insensitive", func(t *testing.T) {
		category, ok := domain.MatchIndicators("HOTEL em Lisboa")
		require.True(t, ok)
		assert.Equal(t, domain.CategoryLodging, category)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := domain.MatchIndicators("xyz")
		assert.False(t, ok)

		_, ok = domain.MatchIndicators("")
		assert.False(t, ok)
	})
}

func TestMatchActions(t *testing.T) {
	cases := []struct {
		text     string
		expected domain.Category
	}{
		{"quero jantar", domain.CategoryFood},
		{"vamos beber algo", domain.CategoryDrink},
		{"assistir um filme hoje", domain.CategoryEntertainment},
		{"quero passear um pouco", domain.CategoryLeisure},
		{"preciso comprar presentes", domain.CategoryShopping},
		{"lugar para dormir", domain.CategoryLodging},
		{"como chegar no centro", domain.CategoryTransport},
		{"preciso de remédio", domain.CategoryHealth},
		{"quero estudar inglês", domain.CategoryEducation},
		{"onde tem missa amanhã", domain.CategoryWorship},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			category, ok := domain.MatchActions(tc.text)
			require.True(t, ok)
			assert.Equal(t, tc.expected, category)
		})
	}

	t.Run("no match", func(t *testing.T) {
		_, ok := domain.MatchActions("olá mundo")
		assert.False(t, ok)
	})
}

func TestClassificationPrompt(t *testing.T) {
	prompt := domain.ClassificationPrompt("quero jantar fora")

	assert.Contains(t, prompt, "quero jantar fora")
	// Все названия категорий присутствуют в инструкции
	for _, name := range []string{"comida", "bebida", "entretenimento", "lazer", "compras", "hospedagem", "transporte", "saúde", "educação", "religião"} {
		assert.Contains(t, prompt, name)
	}
}
