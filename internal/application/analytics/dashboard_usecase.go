// Package analytics contiene los casos de uso de indicadores comerciales del dashboard.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del pipeline para el actor.
//
// Fuente de datos: repositorios de leads, proyectos y seguimientos (solo lectura).
// Todas las cifras respetan el alcance por dueño.
type DashboardUseCase struct {
	leadRepo     repository.LeadRepository
	projectRepo  repository.ProjectRepository
	followUpRepo repository.FollowUpRepository
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	leadRepo repository.LeadRepository,
	projectRepo repository.ProjectRepository,
	followUpRepo repository.FollowUpRepository,
) *DashboardUseCase {
	return &DashboardUseCase{leadRepo: leadRepo, projectRepo: projectRepo, followUpRepo: followUpRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tasa de conversión = round(aprobados / total × 100), 0 si no hay leads.
// Revenue = suma del valor estimado de los proyectos visibles.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor entity.Actor) (*dto.DashboardSummaryDTO, error) {
	ownerID := ""
	if !actor.IsAdmin() {
		ownerID = actor.UserID
	}

	leads, err := uc.leadRepo.List(ctx, lead.Filter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pending := false
	followUps, err := uc.followUpRepo.List(ctx, repository.FollowUpFilter{OwnerID: ownerID, Completed: &pending})
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalLeads:    len(leads),
		TotalProjects: len(projects),
		Revenue:       decimal.Zero,
		LeadsByPriority: map[string]int{
			string(lead.PriorityLow):    0,
			string(lead.PriorityMedium): 0,
			string(lead.PriorityHigh):   0,
		},
	}
	for _, l := range leads {
		switch l.Status {
		case entity.LeadStatusPending:
			out.PendingLeads++
		case entity.LeadStatusContacted:
			out.ContactedLeads++
		case entity.LeadStatusApproved:
			out.ApprovedLeads++
		case entity.LeadStatusRejected:
			out.RejectedLeads++
		}
		out.LeadsByPriority[string(lead.BucketOf(l.Priority))]++
	}
	out.ConversionRate = ConversionRate(out.ApprovedLeads, out.TotalLeads)

	for _, p := range projects {
		out.Revenue = out.Revenue.Add(p.EstimatedValue)
	}

	now := uc.now()
	out.PendingFollowUps = len(followUps)
	for _, f := range followUps {
		if f.Overdue(now) {
			out.OverdueFollowUps++
		}
	}
	return out, nil
}

// ConversionRate porcentaje entero de aprobados sobre el total.
func ConversionRate(approved, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(approved) / float64(total) * 100))
}
