package repository

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// FollowUpFilter criterios de listado de seguimientos. Campos vacíos no filtran.
type FollowUpFilter struct {
	OwnerID   string
	LeadID    string
	Completed *bool
}

// FollowUpRepository define el puerto de persistencia para FollowUp.
type FollowUpRepository interface {
	Create(ctx context.Context, f *entity.FollowUp) error
	GetByID(ctx context.Context, id string) (*entity.FollowUp, error)
	List(ctx context.Context, filter FollowUpFilter) ([]*entity.FollowUp, error)
	Update(ctx context.Context, f *entity.FollowUp) error
}
