package lead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
)

func sampleLeads() []*entity.Lead {
	return []*entity.Lead{
		{ID: "1", Name: "Michael Johnson", Company: "SwiftTech Solutions", Email: "michael@swifttech.com", Status: entity.LeadStatusApproved, Priority: 8, OwnerID: "2"},
		{ID: "2", Name: "Emma Davis", Company: "BlueWave Group", Email: "emma@bluewave.com", Status: entity.LeadStatusPending, Priority: 6, OwnerID: "2"},
		{ID: "3", Name: "Ethan Wilson", Company: "Summit Inc", Email: "ethan@summit.com", Status: entity.LeadStatusRejected, Priority: 3, OwnerID: "2"},
		{ID: "4", Name: "Olivia Parker", Company: "Nexus Corporation", Email: "olivia@nexus.com", Status: entity.LeadStatusContacted, Priority: 9, OwnerID: "3"},
		{ID: "5", Name: "Sophia Adams", Company: "Stellar Ltd", Email: "sophia@stellar.com", Status: entity.LeadStatusPending, Priority: 7, OwnerID: "3"},
		{ID: "6", Name: "Jürgen Straße", Company: "Müller GmbH", Email: "j@muller.de", Status: entity.LeadStatusPending, Priority: 4, OwnerID: "2"},
	}
}

func ids(leads []*entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

func TestBucketOf(t *testing.T) {
	for p := 1; p <= 3; p++ {
		assert.Equal(t, lead.PriorityLow, lead.BucketOf(p))
	}
	for p := 4; p <= 6; p++ {
		assert.Equal(t, lead.PriorityMedium, lead.BucketOf(p))
	}
	for p := 7; p <= 10; p++ {
		assert.Equal(t, lead.PriorityHigh, lead.BucketOf(p))
	}
}

func TestParseFilters(t *testing.T) {
	b, ok := lead.ParsePriorityBucket("all")
	assert.True(t, ok)
	assert.Equal(t, lead.PriorityAny, b)

	b, ok = lead.ParsePriorityBucket(" HIGH ")
	assert.True(t, ok)
	assert.Equal(t, lead.PriorityHigh, b)

	_, ok = lead.ParsePriorityBucket("urgent")
	assert.False(t, ok)

	st, ok := lead.ParseStatusFilter("Approved")
	assert.True(t, ok)
	assert.Equal(t, entity.LeadStatusApproved, st)

	_, ok = lead.ParseStatusFilter("won")
	assert.False(t, ok)
}

func TestFilter_BusquedaSinDistinguirMayusculas(t *testing.T) {
	leads := sampleLeads()

	assert.Equal(t, []string{"1"}, ids(lead.Filter{Search: "SWIFT"}.Apply(leads)))
	assert.Equal(t, []string{"2"}, ids(lead.Filter{Search: "bluewave.com"}.Apply(leads)))
	assert.Equal(t, []string{"3"}, ids(lead.Filter{Search: "summit"}.Apply(leads)))
	assert.Equal(t, []string{"6"}, ids(lead.Filter{Search: "STRASSE"}.Apply(leads)), "plegado Unicode: ß ≡ ss")
	assert.Len(t, lead.Filter{Search: "  "}.Apply(leads), len(leads))
}

func TestFilter_EstadoPrioridadYDueno(t *testing.T) {
	leads := sampleLeads()

	assert.Equal(t, []string{"2", "5", "6"}, ids(lead.Filter{Status: entity.LeadStatusPending}.Apply(leads)))
	assert.Equal(t, []string{"1", "4", "5"}, ids(lead.Filter{Priority: lead.PriorityHigh}.Apply(leads)))
	assert.Equal(t, []string{"2", "6"}, ids(lead.Filter{Priority: lead.PriorityMedium}.Apply(leads)))
	assert.Equal(t, []string{"3"}, ids(lead.Filter{Priority: lead.PriorityLow}.Apply(leads)))
	assert.Equal(t, []string{"4", "5"}, ids(lead.Filter{OwnerID: "3"}.Apply(leads)))
}

// Aplicar el mismo filtro dos veces da el mismo conjunto.
func TestFilter_Idempotente(t *testing.T) {
	f := lead.Filter{Search: "e", Status: entity.LeadStatusPending, Priority: lead.PriorityHigh}
	once := f.Apply(sampleLeads())
	twice := f.Apply(once)
	assert.Equal(t, ids(once), ids(twice))
}

// Combinar criterios equivale a intersectar los resultados de cada criterio por separado.
func TestFilter_CombinacionEsInterseccion(t *testing.T) {
	leads := sampleLeads()
	search := lead.Filter{Search: "o"}
	status := lead.Filter{Status: entity.LeadStatusPending}
	priority := lead.Filter{Priority: lead.PriorityHigh}
	combined := lead.Filter{Search: "o", Status: entity.LeadStatusPending, Priority: lead.PriorityHigh}

	inAll := map[string]int{}
	for _, f := range []lead.Filter{search, status, priority} {
		for _, id := range ids(f.Apply(leads)) {
			inAll[id]++
		}
	}
	var want []string
	for _, l := range leads {
		if inAll[l.ID] == 3 {
			want = append(want, l.ID)
		}
	}

	assert.Equal(t, want, ids(combined.Apply(leads)))
	assert.Equal(t, []string{"5"}, want)
}
