package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

// FollowUpRepo implementación en memoria de FollowUpRepository.
type FollowUpRepo struct {
	h handle
}

// NewFollowUpRepository construye el adaptador sobre el Store.
func NewFollowUpRepository(s *Store) *FollowUpRepo {
	return &FollowUpRepo{h: handle{s: s}}
}

// Create persiste un nuevo seguimiento.
func (r *FollowUpRepo) Create(_ context.Context, f *entity.FollowUp) error {
	return r.h.write(func(d *dataset) error {
		if indexFollowUp(d, f.ID) >= 0 {
			return fmt.Errorf("insert follow-up %s: %w", f.ID, domain.ErrDuplicate)
		}
		d.followUps = append(d.followUps, f.Clone())
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *FollowUpRepo) GetByID(_ context.Context, id string) (*entity.FollowUp, error) {
	var out *entity.FollowUp
	r.h.read(func(d *dataset) {
		if i := indexFollowUp(d, id); i >= 0 {
			out = d.followUps[i].Clone()
		}
	})
	return out, nil
}

// List devuelve los seguimientos que cumplen el filtro, en orden de inserción.
func (r *FollowUpRepo) List(_ context.Context, filter repository.FollowUpFilter) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	r.h.read(func(d *dataset) {
		out = make([]*entity.FollowUp, 0, len(d.followUps))
		for _, f := range d.followUps {
			if filter.OwnerID != "" && f.OwnerID != filter.OwnerID {
				continue
			}
			if filter.LeadID != "" && f.LeadID != filter.LeadID {
				continue
			}
			if filter.Completed != nil && f.Completed != *filter.Completed {
				continue
			}
			out = append(out, f.Clone())
		}
	})
	return out, nil
}

// Update reemplaza el seguimiento.
func (r *FollowUpRepo) Update(_ context.Context, f *entity.FollowUp) error {
	return r.h.write(func(d *dataset) error {
		i := indexFollowUp(d, f.ID)
		if i < 0 {
			return fmt.Errorf("update follow-up %s: %w", f.ID, domain.ErrNotFound)
		}
		d.followUps[i] = f.Clone()
		return nil
	})
}

func indexFollowUp(d *dataset, id string) int {
	for i, f := range d.followUps {
		if f.ID == id {
			return i
		}
	}
	return -1
}
