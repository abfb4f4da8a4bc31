package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/application/usecase"
	"github.com/controlpetro/control-petro-api/internal/domain"
)

// StationHandler maneja el alta y consulta de estaciones.
type StationHandler struct {
	uc *usecase.StationUseCase
}

// NewStationHandler construye el handler de estaciones.
func NewStationHandler(uc *usecase.StationUseCase) *StationHandler {
	return &StationHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta una estación
// @Tags         stations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStationRequest  true  "datos de la estación"
// @Success      201   {object}  dto.StationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "ya existe una estación con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estaciones activas con niveles del día
// @Tags         stations
// @Produce      json
// @Success      200  {array}  dto.StationResponse
// @Router       /api/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una estación con niveles del día
// @Tags         stations
// @Produce      json
// @Param        id   path      string  true  "ID de la estación"
// @Success      200  {object}  dto.StationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stations/{id} [get]
func (h *StationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STATION_NOT_FOUND", Message: "la estación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
