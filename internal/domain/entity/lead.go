package entity

import "time"

// LeadStatus estado del lead en el pipeline comercial.
type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusApproved  LeadStatus = "approved"
	LeadStatusRejected  LeadStatus = "rejected"
)

// LeadStatuses en el orden en que se muestran en filtros y dashboards.
var LeadStatuses = []LeadStatus{
	LeadStatusPending, LeadStatusContacted, LeadStatusApproved, LeadStatusRejected,
}

// Valid informa si el estado es uno de los cuatro conocidos.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusApproved, LeadStatusRejected:
		return true
	}
	return false
}

// Rango de prioridad (1 = mínima, 10 = máxima).
const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
)

// Lead representa un cliente potencial del pipeline comercial.
// StatusHistory está ordenado del cambio más reciente al más antiguo y solo crece.
type Lead struct {
	ID            string
	Name          string
	Company       string
	Email         string
	Phone         string
	Status        LeadStatus
	Priority      int
	Requirements  string
	Notes         string
	OwnerID       string
	OwnerName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	FollowUpDate  *time.Time // vista derivada del seguimiento pendiente más próximo
	StatusHistory []StatusChange
}

// StatusChange entrada inmutable del historial de estados de un Lead.
type StatusChange struct {
	ID         string
	FromStatus LeadStatus
	ToStatus   LeadStatus
	ChangedBy  string
	ChangedAt  time.Time
	Notes      string
}

// Clone copia profunda: el historial y la fecha de seguimiento no se comparten.
func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}
	c := *l
	if l.FollowUpDate != nil {
		d := *l.FollowUpDate
		c.FollowUpDate = &d
	}
	c.StatusHistory = append([]StatusChange(nil), l.StatusHistory...)
	return &c
}
