package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/CRM-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores del pipeline visibles para el usuario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (conteos por estado, proyectos, conversion_rate,
// revenue, seguimientos pendientes y vencidos).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
