package repository

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
)

// LeadRepository define el puerto de persistencia para Lead (DIP).
// List respeta el orden de inserción y no pagina. El filtrado por dueño lo decide
// quien llama a través de lead.Filter.OwnerID; el repositorio no aplica control de acceso.
type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, filter lead.Filter) ([]*entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead) error
	Delete(ctx context.Context, id string) error
}
