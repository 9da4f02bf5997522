package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// ProjectUseCase consulta y edición de proyectos. Los proyectos nacen al aprobar
// un lead (ver leads.LeadUseCase.UpdateStatus); aquí no se crean.
type ProjectUseCase struct {
	repo repository.ProjectRepository
	tx   ports.TxRunner
	now  func() time.Time
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, tx ports.TxRunner) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, tx: tx, now: time.Now}
}

// List proyectos visibles: todos para admin, los de sus leads para sales.
func (uc *ProjectUseCase) List(ctx context.Context, actor entity.Actor) (*dto.ProjectListResponse, error) {
	ownerID := ""
	if !actor.IsAdmin() {
		ownerID = actor.UserID
	}
	list, err := uc.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProjectListResponse{Items: make([]dto.ProjectResponse, 0, len(list)), Total: len(list)}
	for _, p := range list {
		out.Items = append(out.Items, *dto.NewProjectResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proyecto visible para el actor.
func (uc *ProjectUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !actor.Owns(p.OwnerID) {
		return nil, domain.ErrNotFound
	}
	return dto.NewProjectResponse(p), nil
}

// Update actualiza un proyecto. Solo admin. Lectura y escritura van en una transacción.
func (uc *ProjectUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	var updated *entity.Project
	err := uc.tx.Run(ctx, func(_ repository.LeadRepository, _ repository.FollowUpRepository, projectRepo repository.ProjectRepository) error {
		p, err := projectRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := applyProjectChanges(p, in); err != nil {
			return err
		}
		p.UpdatedAt = uc.now()
		if err := projectRepo.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(updated), nil
}

func applyProjectChanges(p *entity.Project, in dto.UpdateProjectRequest) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		status := entity.ProjectStatus(strings.ToLower(strings.TrimSpace(*in.Status)))
		if !status.Valid() {
			return fmt.Errorf("%w: estado de proyecto %q", domain.ErrInvalidInput, *in.Status)
		}
		p.Status = status
	}
	if in.AssignedManagerID != nil {
		p.AssignedManagerID = strings.TrimSpace(*in.AssignedManagerID)
	}
	if in.AssignedManagerName != nil {
		p.AssignedManagerName = strings.TrimSpace(*in.AssignedManagerName)
	}
	if in.EstimatedValue != nil {
		if in.EstimatedValue.IsNegative() {
			return fmt.Errorf("%w: estimated_value no puede ser negativo", domain.ErrInvalidInput)
		}
		p.EstimatedValue = *in.EstimatedValue
	}
	return nil
}
