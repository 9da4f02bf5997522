// Package leads contiene los casos de uso del pipeline comercial: alta, edición,
// listado filtrado, transiciones de estado (con su historial) y borrado.
package leads

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// LeadUseCase casos de uso sobre leads.
//
// El alcance por dueño se aplica aquí y no en el repositorio: un comercial solo
// ve y modifica sus propios leads, un admin ve todos.
type LeadUseCase struct {
	leadRepo repository.LeadRepository
	tx       ports.TxRunner
	policy   lead.TransitionPolicy
	events   ports.EventPublisher
	now      func() time.Time
}

// NewLeadUseCase construye el caso de uso. policy nil equivale a lead.OpenPolicy.
func NewLeadUseCase(
	leadRepo repository.LeadRepository,
	tx ports.TxRunner,
	policy lead.TransitionPolicy,
	events ports.EventPublisher,
) *LeadUseCase {
	if policy == nil {
		policy = lead.OpenPolicy{}
	}
	return &LeadUseCase{leadRepo: leadRepo, tx: tx, policy: policy, events: events, now: time.Now}
}

// Create da de alta un lead en estado pending con historial vacío. Solo el rol sales crea leads.
func (uc *LeadUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if actor.Role != entity.RoleSales {
		return nil, domain.ErrForbidden
	}
	priority := entity.DefaultPriority
	if in.Priority != nil {
		priority = *in.Priority
	}
	l := &entity.Lead{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Company:      strings.TrimSpace(in.Company),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Status:       entity.LeadStatusPending,
		Priority:     priority,
		Requirements: strings.TrimSpace(in.Requirements),
		Notes:        strings.TrimSpace(in.Notes),
		OwnerID:      actor.UserID,
		OwnerName:    actor.DisplayName(),
	}
	if err := validateLead(l); err != nil {
		return nil, err
	}
	now := uc.now()
	l.CreatedAt = now
	l.UpdatedAt = now
	if err := uc.leadRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	ports.Notify(ctx, uc.events, ports.NewEvent(ports.EventLeadCreated, actor.UserID, l.ID, map[string]string{
		"company":  l.Company,
		"priority": strconv.Itoa(l.Priority),
	}))
	return dto.NewLeadResponse(l), nil
}

// Get devuelve ErrNotFound si el lead no existe o no es visible para el actor.
func (uc *LeadUseCase) Get(ctx context.Context, actor entity.Actor, id string) (*dto.LeadResponse, error) {
	l, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || !actor.Owns(l.OwnerID) {
		return nil, domain.ErrNotFound
	}
	return dto.NewLeadResponse(l), nil
}

// List devuelve los leads visibles que cumplen el filtro, en orden de inserción.
func (uc *LeadUseCase) List(ctx context.Context, actor entity.Actor, in dto.LeadFilterRequest) (*dto.LeadListResponse, error) {
	filter, err := FilterFor(actor, in)
	if err != nil {
		return nil, err
	}
	list, err := uc.leadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.LeadListResponse{Items: make([]dto.LeadResponse, 0, len(list)), Total: len(list)}
	for _, l := range list {
		out.Items = append(out.Items, *dto.NewLeadResponse(l))
	}
	return out, nil
}

// Update aplica los campos informados. Estado y fecha de seguimiento no se editan aquí.
// La lectura y la escritura ocurren en la misma transacción para no pisar un cambio
// de estado o de seguimiento confirmado entre ambas.
func (uc *LeadUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	var updated *entity.Lead
	err := uc.tx.Run(ctx, func(leadRepo repository.LeadRepository, _ repository.FollowUpRepository, _ repository.ProjectRepository) error {
		l, err := leadRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if !actor.Owns(l.OwnerID) {
			return domain.ErrForbidden
		}
		applyLeadChanges(l, in)
		if err := validateLead(l); err != nil {
			return err
		}
		l.UpdatedAt = uc.now()
		if err := leadRepo.Update(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.Notify(ctx, uc.events, ports.NewEvent(ports.EventLeadUpdated, actor.UserID, updated.ID, nil))
	return dto.NewLeadResponse(updated), nil
}

func applyLeadChanges(l *entity.Lead, in dto.UpdateLeadRequest) {
	if in.Name != nil {
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Company != nil {
		l.Company = strings.TrimSpace(*in.Company)
	}
	if in.Email != nil {
		l.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		l.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Priority != nil {
		l.Priority = *in.Priority
	}
	if in.Requirements != nil {
		l.Requirements = strings.TrimSpace(*in.Requirements)
	}
	if in.Notes != nil {
		l.Notes = strings.TrimSpace(*in.Notes)
	}
}

// UpdateStatus registra la transición en el historial y, si el destino es approved,
// crea el proyecto del lead en la misma transacción (como máximo uno por lead).
func (uc *LeadUseCase) UpdateStatus(ctx context.Context, actor entity.Actor, id string, in dto.UpdateLeadStatusRequest) (*dto.LeadStatusResponse, error) {
	to := entity.LeadStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !to.Valid() {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
	}

	var (
		updated *entity.Lead
		change  entity.StatusChange
		created *entity.Project
	)
	err := uc.tx.Run(ctx, func(leadRepo repository.LeadRepository, _ repository.FollowUpRepository, projectRepo repository.ProjectRepository) error {
		l, err := leadRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if !actor.Owns(l.OwnerID) {
			return domain.ErrForbidden
		}
		if l.Status == to {
			return fmt.Errorf("%w: el lead ya está en estado %s", domain.ErrInvalidTransition, to)
		}
		if !uc.policy.Allowed(l.Status, to) {
			return fmt.Errorf("%w: %s → %s (política %s)", domain.ErrInvalidTransition, l.Status, to, uc.policy.Name())
		}

		now := uc.now()
		change = lead.Record(l, to, actor.DisplayName(), strings.TrimSpace(in.Notes), now)
		if err := leadRepo.Update(ctx, l); err != nil {
			return err
		}
		updated = l

		if to != entity.LeadStatusApproved {
			return nil
		}
		existing, err := projectRepo.GetByLeadID(ctx, l.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		p := ProjectFromLead(l, now)
		if err := projectRepo.Create(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := []ports.Event{ports.NewEvent(ports.EventLeadStatusChanged, actor.UserID, updated.ID, map[string]string{
		"from":       string(change.FromStatus),
		"to":         string(change.ToStatus),
		"changed_by": change.ChangedBy,
	})}
	if created != nil {
		events = append(events, ports.NewEvent(ports.EventProjectCreated, actor.UserID, created.ID, map[string]string{
			"lead_id": created.LeadID,
			"name":    created.Name,
		}))
	}
	ports.Notify(ctx, uc.events, events...)

	return &dto.LeadStatusResponse{
		Lead:    *dto.NewLeadResponse(updated),
		Project: dto.NewProjectResponse(created),
	}, nil
}

// Delete borra el lead y su historial. Solo admin. Seguimientos y proyectos no se borran en cascada.
func (uc *LeadUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	l, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if err := uc.leadRepo.Delete(ctx, id); err != nil {
		return err
	}
	ports.Notify(ctx, uc.events, ports.NewEvent(ports.EventLeadDeleted, actor.UserID, id, map[string]string{"company": l.Company}))
	return nil
}

// FilterFor traduce el filtro HTTP al del dominio. Para actores no admin fija OwnerID.
func FilterFor(actor entity.Actor, in dto.LeadFilterRequest) (lead.Filter, error) {
	status, ok := lead.ParseStatusFilter(in.Status)
	if !ok {
		return lead.Filter{}, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	bucket, ok := lead.ParsePriorityBucket(in.Priority)
	if !ok {
		return lead.Filter{}, fmt.Errorf("%w: prioridad %q (use low, medium o high)", domain.ErrInvalidInput, in.Priority)
	}
	f := lead.Filter{Search: strings.TrimSpace(in.Search), Status: status, Priority: bucket}
	if !actor.IsAdmin() {
		f.OwnerID = actor.UserID
	}
	return f, nil
}

// ProjectFromLead proyecto inicial de un lead aprobado.
func ProjectFromLead(l *entity.Lead, now time.Time) *entity.Project {
	return &entity.Project{
		ID:             uuid.New().String(),
		LeadID:         l.ID,
		OwnerID:        l.OwnerID,
		Name:           l.Company + " - " + l.Name,
		Description:    l.Requirements,
		Status:         entity.ProjectStatusPlanning,
		EstimatedValue: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func validateLead(l *entity.Lead) error {
	switch {
	case l.Name == "":
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	case l.Company == "":
		return fmt.Errorf("%w: company es obligatorio", domain.ErrInvalidInput)
	case l.Email == "":
		return fmt.Errorf("%w: email es obligatorio", domain.ErrInvalidInput)
	case !strings.Contains(l.Email, "@"):
		return fmt.Errorf("%w: email %q no es válido", domain.ErrInvalidInput, l.Email)
	case l.Requirements == "":
		return fmt.Errorf("%w: requirements es obligatorio", domain.ErrInvalidInput)
	case l.Priority < entity.MinPriority || l.Priority > entity.MaxPriority:
		return fmt.Errorf("%w: priority debe estar entre %d y %d", domain.ErrInvalidInput, entity.MinPriority, entity.MaxPriority)
	}
	return nil
}
