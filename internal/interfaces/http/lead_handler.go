package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/export"
	"github.com/jhoicas/CRM-api/internal/application/followup"
	"github.com/jhoicas/CRM-api/internal/application/leads"
)

// LeadHandler maneja las peticiones HTTP para leads (protegido).
type LeadHandler struct {
	uc       *leads.LeadUseCase
	followUp *followup.FollowUpUseCase
	export   *export.ExportUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *leads.LeadUseCase, followUp *followup.FollowUpUseCase, exp *export.ExportUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, followUp: followUp, export: exp}
}

// List godoc
// @Summary      Listar leads
// @Description  Filtros opcionales; "all" o vacío no filtra. Los comerciales solo ven sus leads.
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Subcadena en nombre, empresa o email"
// @Param        status    query  string  false  "pending | contacted | approved | rejected"
// @Param        priority  query  string  false  "low | medium | high"
// @Success      200  {object}  dto.LeadListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var in dto.LeadFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lead por ID (con historial de estados)
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lead (parcial)
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadRequest   true  "Campos a actualizar"
// @Success      200   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del lead
// @Description  Registra la transición en el historial. Al aprobar se crea el proyecto del lead.
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del lead"
// @Param        body  body  dto.UpdateLeadStatusRequest  true  "Nuevo estado y notas"
// @Success      200   {object}  dto.LeadStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ScheduleFollowUp godoc
// @Summary      Programar seguimiento del lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del lead"
// @Param        body  body  dto.ScheduleFollowUpRequest  true  "Fecha y notas"
// @Success      200   {object}  dto.FollowUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/follow-ups [post]
func (h *LeadHandler) ScheduleFollowUp(c *fiber.Ctx) error {
	var in dto.ScheduleFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.followUp.Schedule(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lead (solo admin)
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar leads filtrados
// @Tags         leads
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/json
// @Produce      application/pdf
// @Param        format    query  string  false  "csv | json | pdf (por defecto csv)"
// @Param        search    query  string  false  "Subcadena en nombre, empresa o email"
// @Param        status    query  string  false  "pending | contacted | approved | rejected"
// @Param        priority  query  string  false  "low | medium | high"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leads/export [get]
func (h *LeadHandler) Export(c *fiber.Ctx) error {
	var in dto.LeadFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	file, err := h.export.Export(c.UserContext(), GetActor(c), in, c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
