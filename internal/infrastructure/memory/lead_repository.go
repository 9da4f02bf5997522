package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación en memoria de LeadRepository (usable directo o dentro de TxRunner).
type LeadRepo struct {
	h handle
}

// NewLeadRepository construye el adaptador sobre el Store.
func NewLeadRepository(s *Store) *LeadRepo {
	return &LeadRepo{h: handle{s: s}}
}

// Create agrega el lead al final de la colección.
func (r *LeadRepo) Create(_ context.Context, l *entity.Lead) error {
	return r.h.write(func(d *dataset) error {
		if indexLead(d, l.ID) >= 0 {
			return fmt.Errorf("insert lead %s: %w", l.ID, domain.ErrDuplicate)
		}
		d.leads = append(d.leads, l.Clone())
		return nil
	})
}

// GetByID devuelve nil, nil si el lead no existe.
func (r *LeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	var out *entity.Lead
	r.h.read(func(d *dataset) {
		if i := indexLead(d, id); i >= 0 {
			out = d.leads[i].Clone()
		}
	})
	return out, nil
}

// List devuelve los leads que cumplen el filtro, en orden de inserción.
func (r *LeadRepo) List(_ context.Context, filter lead.Filter) ([]*entity.Lead, error) {
	var out []*entity.Lead
	r.h.read(func(d *dataset) {
		matched := filter.Apply(d.leads)
		out = make([]*entity.Lead, 0, len(matched))
		for _, l := range matched {
			out = append(out, l.Clone())
		}
	})
	return out, nil
}

// Update reemplaza el lead completo (incluido su historial).
func (r *LeadRepo) Update(_ context.Context, l *entity.Lead) error {
	return r.h.write(func(d *dataset) error {
		i := indexLead(d, l.ID)
		if i < 0 {
			return fmt.Errorf("update lead %s: %w", l.ID, domain.ErrNotFound)
		}
		d.leads[i] = l.Clone()
		return nil
	})
}

// Delete elimina el lead y con él su historial de estados.
func (r *LeadRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(d *dataset) error {
		i := indexLead(d, id)
		if i < 0 {
			return fmt.Errorf("delete lead %s: %w", id, domain.ErrNotFound)
		}
		d.leads = append(d.leads[:i], d.leads[i+1:]...)
		return nil
	})
}

func indexLead(d *dataset, id string) int {
	for i, l := range d.leads {
		if l.ID == id {
			return i
		}
	}
	return -1
}
