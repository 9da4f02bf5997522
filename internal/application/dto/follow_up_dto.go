package dto

import "time"

// ScheduleFollowUpRequest programa (o reprograma) el seguimiento pendiente de un lead.
type ScheduleFollowUpRequest struct {
	ScheduledDate *time.Time `json:"scheduled_date" validate:"required"`
	Notes         string     `json:"notes"`
}

// CompleteFollowUpRequest notas obligatorias de cierre.
type CompleteFollowUpRequest struct {
	Notes string `json:"notes" validate:"required"`
}

// FollowUpFilterRequest state: all, pending, completed, overdue.
type FollowUpFilterRequest struct {
	State  string `query:"state"`
	LeadID string `query:"lead_id"`
}

// FollowUpResponse salida de un seguimiento con el flag derivado Overdue.
type FollowUpResponse struct {
	ID            string     `json:"id"`
	LeadID        string     `json:"lead_id"`
	LeadName      string     `json:"lead_name"`
	Company       string     `json:"company"`
	OwnerID       string     `json:"owner_id"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	Notes         string     `json:"notes"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Overdue       bool       `json:"overdue"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FollowUpListResponse listado de seguimientos.
type FollowUpListResponse struct {
	Items []FollowUpResponse `json:"items"`
	Total int                `json:"total"`
}
