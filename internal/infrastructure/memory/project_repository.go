package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación en memoria de ProjectRepository.
// Mantiene la restricción "un proyecto por lead" igual que lo haría un índice único.
type ProjectRepo struct {
	h handle
}

// NewProjectRepository construye el adaptador sobre el Store.
func NewProjectRepository(s *Store) *ProjectRepo {
	return &ProjectRepo{h: handle{s: s}}
}

// Create persiste un proyecto; ErrDuplicate si el lead ya tiene uno.
func (r *ProjectRepo) Create(_ context.Context, p *entity.Project) error {
	return r.h.write(func(d *dataset) error {
		for _, existing := range d.projects {
			if existing.ID == p.ID || existing.LeadID == p.LeadID {
				return fmt.Errorf("insert project for lead %s: %w", p.LeadID, domain.ErrDuplicate)
			}
		}
		d.projects = append(d.projects, p.Clone())
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *ProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return r.find(func(p *entity.Project) bool { return p.ID == id }), nil
}

// GetByLeadID devuelve el proyecto derivado del lead o nil, nil.
func (r *ProjectRepo) GetByLeadID(_ context.Context, leadID string) (*entity.Project, error) {
	return r.find(func(p *entity.Project) bool { return p.LeadID == leadID }), nil
}

// List lista proyectos; ownerID vacío devuelve todos.
func (r *ProjectRepo) List(_ context.Context, ownerID string) ([]*entity.Project, error) {
	var out []*entity.Project
	r.h.read(func(d *dataset) {
		out = make([]*entity.Project, 0, len(d.projects))
		for _, p := range d.projects {
			if ownerID == "" || p.OwnerID == ownerID {
				out = append(out, p.Clone())
			}
		}
	})
	return out, nil
}

// Update reemplaza el proyecto.
func (r *ProjectRepo) Update(_ context.Context, p *entity.Project) error {
	return r.h.write(func(d *dataset) error {
		for i, existing := range d.projects {
			if existing.ID == p.ID {
				d.projects[i] = p.Clone()
				return nil
			}
		}
		return fmt.Errorf("update project %s: %w", p.ID, domain.ErrNotFound)
	})
}

func (r *ProjectRepo) find(match func(p *entity.Project) bool) *entity.Project {
	var out *entity.Project
	r.h.read(func(d *dataset) {
		for _, p := range d.projects {
			if match(p) {
				out = p.Clone()
				return
			}
		}
	})
	return out
}
