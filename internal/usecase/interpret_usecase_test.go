package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/usecase"
)

// MockIntentClassifier is a mock of IntentClassifier
type MockIntentClassifier struct {
	mock.Mock
}

func (m *MockIntentClassifier) Classify(ctx context.Context, query string) (domain.Category, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Category), args.Error(1)
}

func TestInterpretUseCase_Interpret(t *testing.T) {
	logger := zap.NewNop()
	local := usecase.NewLocalClassifier(logger)
	ctx := context.Background()

	t.Run("remote result wins when remote succeeds", func(t *testing.T) {
		remote := &MockIntentClassifier{}
		remote.On("Classify", mock.Anything, "algo para beber").
			Return(domain.CategoryDrink, nil)

		uc := usecase.NewInterpretUseCase(remote, local, logger, 5*time.Second)

		category := uc.Interpret(ctx, "algo para beber")
		assert.Equal(t, domain.CategoryDrink, category)
		remote.AssertExpectations(t)
	})

	t.Run("remote failure falls back to local", func(t *testing.T) {
		remote := &MockIntentClassifier{}
		remote.On("Classify", mock.Anything, "quero jantar").
			Return(domain.Category(""), errors.New("connection refused"))

		uc := usecase.NewInterpretUseCase(remote, local, logger, 5*time.Second)

		category := uc.Interpret(ctx, "quero jantar")
		assert.Equal(t, domain.CategoryFood, category)
		remote.AssertExpectations(t)
	})

	t.Run("remote is called exactly once, no retries", func(t *testing.T) {
		remote := &MockIntentClassifier{}
		remote.On("Classify", mock.Anything, "xyz").
			Return(domain.Category(""), errors.New("timeout")).Once()

		uc := usecase.NewInterpretUseCase(remote, local, logger, 5*time.Second)

		category := uc.Interpret(ctx, "xyz")
		assert.Equal(t, domain.DefaultCategory, category)
		remote.AssertNumberOfCalls(t, "Classify", 1)
	})

	t.Run("nil remote uses local directly", func(t *testing.T) {
		uc := usecase.NewInterpretUseCase(nil, local, logger, 5*time.Second)

		category := uc.Interpret(ctx, "preciso de remédio")
		assert.Equal(t, domain.CategoryHealth, category)
	})

	t.Run("never returns a value outside the closed set", func(t *testing.T) {
		remote := &MockIntentClassifier{}
		remote.On("Classify", mock.Anything, mock.Anything).
			Return(domain.Category(""), errors.New("boom"))

		uc := usecase.NewInterpretUseCase(remote, local, logger, time.Second)

		for _, query := range []string{"", "???", "texto sem sinal"} {
			category := uc.Interpret(ctx, query)
			assert.True(t, domain.IsValidCategory(string(category)), "query %q", query)
		}
	})
}
