package dto

import "time"

// CreateLeadRequest entrada del formulario "nuevo lead". Priority nil = 5.
type CreateLeadRequest struct {
	Name         string `json:"name" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Priority     *int   `json:"priority" validate:"omitempty,min=1,max=10"`
	Requirements string `json:"requirements" validate:"required"`
	Notes        string `json:"notes"`
}

// UpdateLeadRequest edición parcial: solo se aplican los campos no nil.
// Estado y fecha de seguimiento tienen sus propias operaciones.
type UpdateLeadRequest struct {
	Name         *string `json:"name"`
	Company      *string `json:"company"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Priority     *int    `json:"priority"`
	Requirements *string `json:"requirements"`
	Notes        *string `json:"notes"`
}

// UpdateLeadStatusRequest transición de estado con notas opcionales.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted approved rejected"`
	Notes  string `json:"notes"`
}

// LeadFilterRequest filtros de listado y exportación (query string).
// Valores vacíos o "all" deshabilitan el criterio.
type LeadFilterRequest struct {
	Search   string `query:"search"`
	Status   string `query:"status"`   // pending, contacted, approved, rejected
	Priority string `query:"priority"` // low (1-3), medium (4-6), high (7-10)
}

// StatusChangeResponse entrada del historial.
type StatusChangeResponse struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	ChangedAt  time.Time `json:"changed_at"`
	Notes      string    `json:"notes,omitempty"`
}

// LeadResponse salida de un lead con su historial (más reciente primero).
type LeadResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Company       string                 `json:"company"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone"`
	Status        string                 `json:"status"`
	Priority      int                    `json:"priority"`
	Requirements  string                 `json:"requirements"`
	Notes         string                 `json:"notes,omitempty"`
	OwnerID       string                 `json:"owner_id"`
	OwnerName     string                 `json:"owner_name"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	FollowUpDate  *time.Time             `json:"follow_up_date,omitempty"`
	StatusHistory []StatusChangeResponse `json:"status_history"`
}

// LeadListResponse listado completo (sin paginación).
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// LeadStatusResponse resultado de una transición. Project viene informado
// solo cuando la aprobación creó el proyecto en esta misma operación.
type LeadStatusResponse struct {
	Lead    LeadResponse     `json:"lead"`
	Project *ProjectResponse `json:"project,omitempty"`
}
