// Package followup implementa el seguimiento de contactos programados con leads.
//
// Los registros FollowUp son la fuente de verdad. Lead.FollowUpDate es una vista
// que se recalcula en la misma transacción cada vez que cambia un seguimiento del lead.
package followup

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// Estados aceptados por List.
const (
	StateAll       = "all"
	StatePending   = "pending"
	StateCompleted = "completed"
	StateOverdue   = "overdue"
)

// FollowUpUseCase casos de uso de seguimientos.
type FollowUpUseCase struct {
	followUpRepo repository.FollowUpRepository
	tx           ports.TxRunner
	events       ports.EventPublisher
	now          func() time.Time
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(followUpRepo repository.FollowUpRepository, tx ports.TxRunner, events ports.EventPublisher) *FollowUpUseCase {
	return &FollowUpUseCase{followUpRepo: followUpRepo, tx: tx, events: events, now: time.Now}
}

// Schedule programa el seguimiento de un lead. Si el lead ya tiene uno pendiente
// se reprograma (fecha y notas); si no, se crea uno nuevo.
func (uc *FollowUpUseCase) Schedule(ctx context.Context, actor entity.Actor, leadID string, in dto.ScheduleFollowUpRequest) (*dto.FollowUpResponse, error) {
	if in.ScheduledDate == nil || in.ScheduledDate.IsZero() {
		return nil, domain.ErrMissingFollowUpDate
	}
	scheduled := in.ScheduledDate.UTC()
	notes := strings.TrimSpace(in.Notes)

	var (
		result *entity.FollowUp
		now    = uc.now()
	)
	err := uc.tx.Run(ctx, func(leadRepo repository.LeadRepository, followUpRepo repository.FollowUpRepository, _ repository.ProjectRepository) error {
		l, err := leadRepo.GetByID(ctx, leadID)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if !actor.Owns(l.OwnerID) {
			return domain.ErrForbidden
		}

		pending, err := pendingFor(ctx, followUpRepo, l.ID)
		if err != nil {
			return err
		}
		if len(pending) > 0 {
			f := pending[0]
			f.ScheduledDate = scheduled
			f.Notes = notes
			f.LeadName = l.Name
			f.Company = l.Company
			f.UpdatedAt = now
			if err := followUpRepo.Update(ctx, f); err != nil {
				return err
			}
			result = f
		} else {
			f := &entity.FollowUp{
				ID:            uuid.New().String(),
				LeadID:        l.ID,
				LeadName:      l.Name,
				Company:       l.Company,
				OwnerID:       l.OwnerID,
				ScheduledDate: scheduled,
				Notes:         notes,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := followUpRepo.Create(ctx, f); err != nil {
				return err
			}
			result = f
		}
		return syncLeadFollowUpDate(ctx, leadRepo, followUpRepo, l)
	})
	if err != nil {
		return nil, err
	}
	ports.Notify(ctx, uc.events, ports.NewEvent(ports.EventFollowUpScheduled, actor.UserID, result.ID, map[string]string{
		"lead_id":        result.LeadID,
		"scheduled_date": result.ScheduledDate.Format(time.RFC3339),
	}))
	return dto.NewFollowUpResponse(result, now), nil
}

// Complete cierra el seguimiento. Las notas de cierre son obligatorias y reemplazan
// a las de programación. Un seguimiento ya completado devuelve ErrConflict.
func (uc *FollowUpUseCase) Complete(ctx context.Context, actor entity.Actor, id string, in dto.CompleteFollowUpRequest) (*dto.FollowUpResponse, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return nil, domain.ErrEmptyCompletionNotes
	}

	var (
		result *entity.FollowUp
		now    = uc.now()
	)
	err := uc.tx.Run(ctx, func(leadRepo repository.LeadRepository, followUpRepo repository.FollowUpRepository, _ repository.ProjectRepository) error {
		f, err := followUpRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		if !actor.Owns(f.OwnerID) {
			return domain.ErrForbidden
		}
		if f.Completed {
			return fmt.Errorf("%w: el seguimiento ya fue completado", domain.ErrConflict)
		}
		completedAt := now
		f.Completed = true
		f.CompletedAt = &completedAt
		f.Notes = notes
		f.UpdatedAt = now
		if err := followUpRepo.Update(ctx, f); err != nil {
			return err
		}
		result = f

		l, err := leadRepo.GetByID(ctx, f.LeadID)
		if err != nil {
			return err
		}
		if l == nil {
			// el lead pudo haberse borrado; el seguimiento sobrevive
			return nil
		}
		return syncLeadFollowUpDate(ctx, leadRepo, followUpRepo, l)
	})
	if err != nil {
		return nil, err
	}
	ports.Notify(ctx, uc.events, ports.NewEvent(ports.EventFollowUpCompleted, actor.UserID, result.ID, map[string]string{
		"lead_id": result.LeadID,
	}))
	return dto.NewFollowUpResponse(result, now), nil
}

// Get devuelve ErrNotFound si no existe o no es visible para el actor.
func (uc *FollowUpUseCase) Get(ctx context.Context, actor entity.Actor, id string) (*dto.FollowUpResponse, error) {
	f, err := uc.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || !actor.Owns(f.OwnerID) {
		return nil, domain.ErrNotFound
	}
	return dto.NewFollowUpResponse(f, uc.now()), nil
}

// List lista los seguimientos visibles por estado, ordenados por fecha programada.
func (uc *FollowUpUseCase) List(ctx context.Context, actor entity.Actor, in dto.FollowUpFilterRequest) (*dto.FollowUpListResponse, error) {
	state := strings.ToLower(strings.TrimSpace(in.State))
	filter := repository.FollowUpFilter{LeadID: strings.TrimSpace(in.LeadID)}
	switch state {
	case "", StateAll:
	case StatePending, StateOverdue:
		filter.Completed = boolPtr(false)
	case StateCompleted:
		filter.Completed = boolPtr(true)
	default:
		return nil, fmt.Errorf("%w: state %q (use all, pending, completed u overdue)", domain.ErrInvalidInput, in.State)
	}
	if !actor.IsAdmin() {
		filter.OwnerID = actor.UserID
	}

	list, err := uc.followUpRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	sortBySchedule(list)
	out := &dto.FollowUpListResponse{Items: make([]dto.FollowUpResponse, 0, len(list))}
	for _, f := range list {
		if state == StateOverdue && !f.Overdue(now) {
			continue
		}
		out.Items = append(out.Items, *dto.NewFollowUpResponse(f, now))
	}
	out.Total = len(out.Items)
	return out, nil
}

// Overdue devuelve todos los seguimientos vencidos a la fecha now (sin alcance por dueño).
// Lo usa el job programado que los reporta.
func (uc *FollowUpUseCase) Overdue(ctx context.Context, now time.Time) ([]*entity.FollowUp, error) {
	list, err := uc.followUpRepo.List(ctx, repository.FollowUpFilter{Completed: boolPtr(false)})
	if err != nil {
		return nil, err
	}
	out := make([]*entity.FollowUp, 0, len(list))
	for _, f := range list {
		if f.Overdue(now) {
			out = append(out, f)
		}
	}
	sortBySchedule(out)
	return out, nil
}

// syncLeadFollowUpDate fija Lead.FollowUpDate al seguimiento pendiente más próximo (nil si no hay).
// No toca UpdatedAt: es un dato derivado.
func syncLeadFollowUpDate(ctx context.Context, leadRepo repository.LeadRepository, followUpRepo repository.FollowUpRepository, l *entity.Lead) error {
	pending, err := pendingFor(ctx, followUpRepo, l.ID)
	if err != nil {
		return err
	}
	l.FollowUpDate = nil
	if len(pending) > 0 {
		d := pending[0].ScheduledDate
		l.FollowUpDate = &d
	}
	return leadRepo.Update(ctx, l)
}

// pendingFor seguimientos pendientes del lead, el más próximo primero.
func pendingFor(ctx context.Context, followUpRepo repository.FollowUpRepository, leadID string) ([]*entity.FollowUp, error) {
	list, err := followUpRepo.List(ctx, repository.FollowUpFilter{LeadID: leadID, Completed: boolPtr(false)})
	if err != nil {
		return nil, err
	}
	sortBySchedule(list)
	return list, nil
}

func sortBySchedule(list []*entity.FollowUp) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ScheduledDate.Before(list[j].ScheduledDate)
	})
}

func boolPtr(b bool) *bool { return &b }
