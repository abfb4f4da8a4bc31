package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/application/prediction"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// PredictionHandler maneja pronósticos de demanda y recomendaciones de pedido.
type PredictionHandler struct {
	uc *prediction.UseCase
}

// NewPredictionHandler construye el handler de predicciones.
func NewPredictionHandler(uc *prediction.UseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Recommendations godoc
// @Summary      Generar recomendaciones de pedido para la flota
// @Tags         predictions
// @Produce      json
// @Param        hours  query     int  false  "horizonte en horas (default 72)"
// @Success      200    {array}   dto.OrderRecommendationDTO
// @Router       /api/predictions/recommendations [get]
func (h *PredictionHandler) Recommendations(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 0)
	out, err := h.uc.RecommendOrders(c.Context(), hours)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.OrderRecommendationDTO{}
	}
	return c.JSON(out)
}

// FleetForecast godoc
// @Summary      Demanda agregada de la flota por día futuro
// @Tags         predictions
// @Produce      json
// @Param        station_id  query     string  false  "limitar a una estación"
// @Param        days        query     int     false  "horizonte en días (default 7)"
// @Success      200         {array}   dto.FleetForecastBucketDTO
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/predictions/forecast [get]
func (h *PredictionHandler) FleetForecast(c *fiber.Ctx) error {
	stationID := c.Query("station_id")
	days := c.QueryInt("days", 0)
	out, err := h.uc.FleetForecast(c.Context(), stationID, days)
	if err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STATION_NOT_FOUND", Message: "la estación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StationOutlook godoc
// @Summary      Panorama de un par estación/combustible
// @Tags         predictions
// @Produce      json
// @Param        id    path      string  true  "ID de la estación"
// @Param        fuel  path      string  true  "magna | premium | diesel"
// @Success      200   {object}  dto.StationOutlookDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/predictions/station/{id}/{fuel} [get]
func (h *PredictionHandler) StationOutlook(c *fiber.Ctx) error {
	fuel := entity.FuelType(c.Params("fuel"))
	out, err := h.uc.StationOutlook(c.Context(), c.Params("id"), fuel)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "combustible inválido: magna, premium o diesel"})
		case errors.Is(err, domain.ErrStationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STATION_NOT_FOUND", Message: "la estación no existe"})
		case errors.Is(err, domain.ErrInsufficientData):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_DATA", Message: "historial de ventas insuficiente para pronosticar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
