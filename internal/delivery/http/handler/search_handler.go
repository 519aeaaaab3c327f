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

// SearchHandler - составной обработчик: классификация + поиск мест
// за один запрос
type SearchHandler struct {
	interpretUC *usecase.InterpretUseCase
	placesUC    *usecase.PlacesUseCase
	logger      *zap.Logger
}

func NewSearchHandler(
	interpretUC *usecase.InterpretUseCase,
	placesUC *usecase.PlacesUseCase,
	logger *zap.Logger,
) *SearchHandler {
	return &SearchHandler{
		interpretUC: interpretUC,
		placesUC:    placesUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Полный пайплайн поиска
// @Description Классифицирует свободный текст в категорию и возвращает места. Оба шага деградируют мягко: при недоступности внешних сервисов ответ строится на локальной классификации и статических данных.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Текст запроса и опциональные координаты"
// @Success 200 {object} utils.SuccessResponse{data=domain.SearchResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyQuery)
	}

	point, err := parseLocation(req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Два внешних вызова строго последовательны: категория нужна
	// для построения запроса к геопровайдеру
	category := h.interpretUC.Interpret(c.Context(), req.Query)
	places := h.placesUC.Search(c.Context(), category, point)

	return utils.SendSuccess(c, domain.SearchResult{
		Query:    req.Query,
		Category: category,
		Results:  places,
		Location: point,
	}, &utils.Meta{Total: len(places)})
}
