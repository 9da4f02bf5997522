package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID                  string          `json:"id"`
	LeadID              string          `json:"lead_id"`
	OwnerID             string          `json:"owner_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Status              string          `json:"status"`
	AssignedManagerID   string          `json:"assigned_manager_id,omitempty"`
	AssignedManagerName string          `json:"assigned_manager_name,omitempty"`
	EstimatedValue      decimal.Decimal `json:"estimated_value"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// UpdateProjectRequest edición parcial (solo admin).
type UpdateProjectRequest struct {
	Name                *string          `json:"name"`
	Description         *string          `json:"description"`
	Status              *string          `json:"status" validate:"omitempty,oneof=planning in-progress completed"`
	AssignedManagerID   *string          `json:"assigned_manager_id"`
	AssignedManagerName *string          `json:"assigned_manager_name"`
	EstimatedValue      *decimal.Decimal `json:"estimated_value"`
}

// ProjectListResponse listado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Total int               `json:"total"`
}
