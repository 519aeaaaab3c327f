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

// PlacesHandler - обработчик поиска мест
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// SearchPlaces godoc
// @Summary Поиск мест по категории
// @Description Возвращает места для категории через трёхэтапный поиск: строгий запрос к Overpass, расширенный запрос, статические примеры. Список всегда непустой. Координаты опциональны, но только парой.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.PlacesRequest true "Категория и опциональные координаты"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [post]
func (h *PlacesHandler) SearchPlaces(c *fiber.Ctx) error {
	var req dto.PlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return utils.SendError(c, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
		}))
	}

	point, err := parseLocation(req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	places := h.placesUC.Search(c.Context(), category, point)

	return utils.SendSuccess(c, dto.PlacesResponse{
		Category: string(category),
		Results:  places,
		Location: point,
	}, &utils.Meta{Total: len(places)})
}
