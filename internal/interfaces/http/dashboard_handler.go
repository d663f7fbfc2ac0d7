package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Danielpnvs/usekaylla-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del dashboard y el reporte PDF.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	report    *analytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, report *analytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, report: report}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CashFlowReport godoc
// @Summary      Reporte PDF del flujo de caja
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/dashboard/cashflow-report [get]
func (h *DashboardHandler) CashFlowReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.GenerateCashFlowReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("flujo-de-caja-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
