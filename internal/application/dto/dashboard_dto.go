package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todas las cifras se calculan sobre los leads y proyectos visibles para el usuario.
type DashboardSummaryDTO struct {
	TotalLeads     int `json:"total_leads"`
	PendingLeads   int `json:"pending_leads"`
	ContactedLeads int `json:"contacted_leads"`
	ApprovedLeads  int `json:"approved_leads"`
	RejectedLeads  int `json:"rejected_leads"`
	TotalProjects  int `json:"total_projects"`

	ConversionRate int             `json:"conversion_rate"` // % aprobados sobre el total, redondeado
	Revenue        decimal.Decimal `json:"revenue"`         // suma de EstimatedValue de los proyectos

	PendingFollowUps int `json:"pending_follow_ups"`
	OverdueFollowUps int `json:"overdue_follow_ups"`

	LeadsByPriority map[string]int `json:"leads_by_priority"` // low / medium / high
}
