package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// InterpretHandler - обработчик классификации намерений
type InterpretHandler struct {
	interpretUC *usecase.InterpretUseCase
	logger      *zap.Logger
}

func NewInterpretHandler(interpretUC *usecase.InterpretUseCase, logger *zap.Logger) *InterpretHandler {
	return &InterpretHandler{
		interpretUC: interpretUC,
		logger:      logger,
	}
}

// Interpret godoc
// @Summary Классификация текста запроса
// @Description Определяет категорию намерения по свободному тексту. Сначала удалённый классификатор, при отказе - локальная лексическая классификация. Всегда возвращает категорию из закрытого набора.
// @Tags Interpret
// @Accept json
// @Produce json
// @Param request body dto.InterpretRequest true "Текст запроса"
// @Success 200 {object} utils.SuccessResponse{data=dto.InterpretResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/interpret [post]
func (h *InterpretHandler) Interpret(c *fiber.Ctx) error {
	var req dto.InterpretRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyQuery)
	}

	category := h.interpretUC.Interpret(c.Context(), req.Query)

	return utils.SendSuccess(c, dto.InterpretResponse{
		Query:    req.Query,
		Category: string(category),
	}, nil)
}

// GetCategories godoc
// @Summary Список поддерживаемых категорий
// @Description Возвращает закрытый набор категорий в порядке приоритета классификации
// @Tags Interpret
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Router /api/v1/categories [get]
func (h *InterpretHandler) GetCategories(c *fiber.Ctx) error {
	categories := make([]string, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		categories = append(categories, string(category))
	}

	return utils.SendSuccess(c, dto.CategoriesResponse{
		Categories: categories,
	}, &utils.Meta{Total: len(categories)})
}
