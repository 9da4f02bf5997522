// Package lead contiene las reglas puras del ciclo de vida de un Lead:
// registro de cambios de estado, política de transiciones y filtros.
package lead

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// Record registra un cambio de estado: construye la entrada con FromStatus = estado
// actual, la antepone al historial y sobrescribe Status y UpdatedAt.
// No valida nada; la política y el caso de uso deciden si el cambio procede.
func Record(l *entity.Lead, to entity.LeadStatus, changedBy, notes string, at time.Time) entity.StatusChange {
	change := entity.StatusChange{
		ID:         uuid.New().String(),
		FromStatus: l.Status,
		ToStatus:   to,
		ChangedBy:  changedBy,
		ChangedAt:  at,
		Notes:      notes,
	}
	history := make([]entity.StatusChange, 0, len(l.StatusHistory)+1)
	history = append(history, change)
	history = append(history, l.StatusHistory...)
	l.StatusHistory = history
	l.Status = to
	l.UpdatedAt = at
	return change
}

// TransitionPolicy decide si un lead puede pasar de un estado a otro.
type TransitionPolicy interface {
	Allowed(from, to entity.LeadStatus) bool
	Name() string
}

// OpenPolicy permite cualquier transición directa entre estados válidos
// (por ejemplo rejected → approved).
type OpenPolicy struct{}

func (OpenPolicy) Allowed(from, to entity.LeadStatus) bool { return from.Valid() && to.Valid() }
func (OpenPolicy) Name() string                            { return "open" }

// StrictPolicy máquina de estados finita:
// pending → {contacted, rejected}; contacted → {approved, rejected}; approved y rejected son terminales.
type StrictPolicy struct{}

var strictTransitions = map[entity.LeadStatus]map[entity.LeadStatus]bool{
	entity.LeadStatusPending:   {entity.LeadStatusContacted: true, entity.LeadStatusRejected: true},
	entity.LeadStatusContacted: {entity.LeadStatusApproved: true, entity.LeadStatusRejected: true},
	entity.LeadStatusApproved:  {},
	entity.LeadStatusRejected:  {},
}

func (StrictPolicy) Allowed(from, to entity.LeadStatus) bool {
	nexts, ok := strictTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

func (StrictPolicy) Name() string { return "strict" }

// PolicyFor devuelve la política según la configuración.
func PolicyFor(strict bool) TransitionPolicy {
	if strict {
		return StrictPolicy{}
	}
	return OpenPolicy{}
}
