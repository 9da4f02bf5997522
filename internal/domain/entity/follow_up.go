package entity

import "time"

// FollowUp contacto programado con un lead.
// LeadID es una referencia débil: borrar el lead no borra sus seguimientos.
type FollowUp struct {
	ID            string
	LeadID        string
	LeadName      string
	Company       string
	OwnerID       string
	ScheduledDate time.Time
	Notes         string
	Completed     bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overdue es derivado, nunca se persiste: fecha programada pasada y sin completar.
func (f *FollowUp) Overdue(now time.Time) bool {
	return !f.Completed && f.ScheduledDate.Before(now)
}

// Clone copia el seguimiento sin compartir CompletedAt.
func (f *FollowUp) Clone() *FollowUp {
	if f == nil {
		return nil
	}
	c := *f
	if f.CompletedAt != nil {
		t := *f.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
