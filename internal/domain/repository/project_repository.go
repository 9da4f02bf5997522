package repository

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
// Create devuelve domain.ErrDuplicate si ya existe un proyecto para el mismo LeadID.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetByLeadID(ctx context.Context, leadID string) (*entity.Project, error)
	List(ctx context.Context, ownerID string) ([]*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
}
