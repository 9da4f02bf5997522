package lead_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
)

func newPendingLead() *entity.Lead {
	created := time.Date(2024, 1, 25, 9, 0, 0, 0, time.UTC)
	return &entity.Lead{
		ID:        "5",
		Name:      "Sophia Adams",
		Company:   "Stellar Ltd",
		Status:    entity.LeadStatusPending,
		Priority:  8,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Escenario de referencia: prioridad 8, pending → approved con notas "good fit".
func TestRecord_PendingAApproved(t *testing.T) {
	l := newPendingLead()
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	change := lead.Record(l, entity.LeadStatusApproved, "Admin User", "good fit", at)

	require.Len(t, l.StatusHistory, 1)
	assert.Equal(t, entity.LeadStatusPending, l.StatusHistory[0].FromStatus)
	assert.Equal(t, entity.LeadStatusApproved, l.StatusHistory[0].ToStatus)
	assert.Equal(t, "good fit", l.StatusHistory[0].Notes)
	assert.Equal(t, "Admin User", l.StatusHistory[0].ChangedBy)
	assert.Equal(t, entity.LeadStatusApproved, l.Status)
	assert.Equal(t, at, l.UpdatedAt)
	assert.Equal(t, change, l.StatusHistory[0])
	assert.NotEmpty(t, change.ID)
}

// Tras N cambios: longitud N, la entrada i parte del estado al que llegó la i+1
// y la más antigua parte del estado de creación.
func TestRecord_CadenaDeHistorial(t *testing.T) {
	l := newPendingLead()
	targets := []entity.LeadStatus{
		entity.LeadStatusContacted,
		entity.LeadStatusRejected,
		entity.LeadStatusApproved,
		entity.LeadStatusContacted,
		entity.LeadStatusPending,
	}
	at := l.CreatedAt
	for i, to := range targets {
		at = at.Add(time.Hour)
		lead.Record(l, to, "Sales Representative", "", at)
		assert.Len(t, l.StatusHistory, i+1, "el historial crece de uno en uno")
	}

	require.Len(t, l.StatusHistory, len(targets))
	for i := 0; i < len(l.StatusHistory)-1; i++ {
		assert.Equal(t, l.StatusHistory[i+1].ToStatus, l.StatusHistory[i].FromStatus)
	}
	oldest := l.StatusHistory[len(l.StatusHistory)-1]
	assert.Equal(t, entity.LeadStatusPending, oldest.FromStatus)
	assert.Equal(t, l.Status, l.StatusHistory[0].ToStatus)
}

func TestRecord_NoCompartePrefijoConElHistorialAnterior(t *testing.T) {
	l := newPendingLead()
	lead.Record(l, entity.LeadStatusContacted, "a", "", time.Now())
	snapshot := l.Clone()

	lead.Record(l, entity.LeadStatusApproved, "b", "", time.Now())

	require.Len(t, snapshot.StatusHistory, 1)
	assert.Equal(t, entity.LeadStatusContacted, snapshot.StatusHistory[0].ToStatus)
}

func TestOpenPolicy_PermiteCualquierTransicion(t *testing.T) {
	p := lead.OpenPolicy{}
	for _, from := range entity.LeadStatuses {
		for _, to := range entity.LeadStatuses {
			assert.True(t, p.Allowed(from, to), "%s → %s", from, to)
		}
	}
	assert.False(t, p.Allowed(entity.LeadStatusPending, "won"))
}

func TestStrictPolicy(t *testing.T) {
	p := lead.StrictPolicy{}
	cases := []struct {
		from, to entity.LeadStatus
		want     bool
	}{
		{entity.LeadStatusPending, entity.LeadStatusContacted, true},
		{entity.LeadStatusPending, entity.LeadStatusRejected, true},
		{entity.LeadStatusPending, entity.LeadStatusApproved, false},
		{entity.LeadStatusContacted, entity.LeadStatusApproved, true},
		{entity.LeadStatusContacted, entity.LeadStatusRejected, true},
		{entity.LeadStatusContacted, entity.LeadStatusPending, false},
		{entity.LeadStatusApproved, entity.LeadStatusRejected, false},
		{entity.LeadStatusRejected, entity.LeadStatusApproved, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.Allowed(c.from, c.to), "%s → %s", c.from, c.to)
	}
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, "strict", lead.PolicyFor(true).Name())
	assert.Equal(t, "open", lead.PolicyFor(false).Name())
}
