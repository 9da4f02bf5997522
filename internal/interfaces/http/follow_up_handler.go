package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/followup"
)

// FollowUpHandler maneja las peticiones HTTP para seguimientos (protegido).
type FollowUpHandler struct {
	uc *followup.FollowUpUseCase
}

// NewFollowUpHandler construye el handler.
func NewFollowUpHandler(uc *followup.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// List godoc
// @Summary      Listar seguimientos
// @Tags         follow-ups
// @Security     Bearer
// @Produce      json
// @Param        state    query  string  false  "all | pending | completed | overdue"
// @Param        lead_id  query  string  false  "Solo los del lead"
// @Success      200  {object}  dto.FollowUpListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/follow-ups [get]
func (h *FollowUpHandler) List(c *fiber.Ctx) error {
	var in dto.FollowUpFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener seguimiento
// @Tags         follow-ups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del seguimiento"
// @Success      200  {object}  dto.FollowUpResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/follow-ups/{id} [get]
func (h *FollowUpHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar seguimiento
// @Description  Las notas de cierre son obligatorias.
// @Tags         follow-ups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del seguimiento"
// @Param        body  body  dto.CompleteFollowUpRequest  true  "Notas de cierre"
// @Success      200   {object}  dto.FollowUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/follow-ups/{id}/complete [post]
func (h *FollowUpHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Complete(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
