package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/usecase"
)

func TestLocalClassifier_Classify(t *testing.T) {
	classifier := usecase.NewLocalClassifier(zap.NewNop())
	ctx := context.Background()

	t.Run("always returns a member of the closed set", func(t *testing.T) {
		inputs := []string{
			"", "quero jantar", "xyz", "onde fica o aeroporto",
			"!!!", "Eu quero sair e conversar com meu namorado",
		}

		for _, input := range inputs {
			category, err := classifier.Classify(ctx, input)
			require.NoError(t, err)
			assert.True(t, domain.IsValidCategory(string(category)), "input %q -> %q", input, category)
		}
	})

	t.Run("indicator match", func(t *testing.T) {
		category, err := classifier.Classify(ctx, "tem alguma farmácia aberta?")
		require.NoError(t, err)
		// "farmácia" - индикатор shopping, идёт раньше health
		assert.Equal(t, domain.CategoryShopping, category)
	})

	t.Run("action phrase match after indicators", func(t *testing.T) {
		category, err := classifier.Classify(ctx, "quero jantar")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryFood, category)

		category, err = classifier.Classify(ctx, "preciso de remédio")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryHealth, category)
	})

	t.Run("indicators take priority over action phrases", func(t *testing.T) {
		// "igreja" (worship indicator) против "comer" (food action):
		// индикаторы проверяются первыми для всех категорий
		category, err := classifier.Classify(ctx, "comer perto da igreja")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryWorship, category)
	})

	t.Run("empty text returns default category", func(t *testing.T) {
		category, err := classifier.Classify(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategory, category)
	})

	t.Run("no signal returns default category", func(t *testing.T) {
		category, err := classifier.Classify(ctx, "qwerty 12345")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryFood, category)
	})
}
