package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/application/inventory"
	"github.com/controlpetro/control-petro-api/internal/domain"
)

// InventoryHandler maneja el registro de transacciones y las vistas de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterTransaction godoc
// @Summary      Registrar venta o recepción de combustible
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "transacción"
// @Success      201   {object}  dto.RecordTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterTransaction(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "station_id, fuel_type, transaction_type y liters > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrStationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STATION_NOT_FOUND", Message: "la estación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      Existencia total de la flota por combustible
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Flujo diario de inventario de la flota
// @Tags         inventory
// @Produce      json
// @Param        days  query     int  false  "días hacia atrás (default 7)"
// @Success      200   {array}   dto.InventoryHistoryDayDTO
// @Router       /api/inventory/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	out, err := h.uc.History(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
