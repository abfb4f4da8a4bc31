package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controlpetro/control-petro-api/internal/application/analytics"
	"github.com/controlpetro/control-petro-api/internal/application/dto"
)

// DashboardHandler maneja los indicadores del panel y las alertas.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del panel.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Indicadores del día
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesChart godoc
// @Summary      Ventas diarias por combustible para la gráfica del panel
// @Tags         dashboard
// @Produce      json
// @Param        days  query     int  false  "días hacia atrás (default 7)"
// @Success      200   {array}   dto.SalesChartDayDTO
// @Router       /api/dashboard/sales-chart [get]
func (h *DashboardHandler) SalesChart(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	out, err := h.uc.SalesChart(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de nivel de tanque
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.AlertDTO
// @Router       /api/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.AlertDTO{}
	}
	return c.JSON(out)
}
