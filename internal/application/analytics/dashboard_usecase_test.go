package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CRM-api/internal/application/analytics"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/infrastructure/memory"
)

func newDashboard(s *memory.Store) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		memory.NewLeadRepository(s),
		memory.NewProjectRepository(s),
		memory.NewFollowUpRepository(s),
	)
}

func TestGetSummary_DatosDemo(t *testing.T) {
	s := memory.NewStore()
	memory.SeedDemoData(s)
	admin := entity.Actor{UserID: memory.DemoAdminID, Role: entity.RoleAdmin}

	out, err := newDashboard(s).GetSummary(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalLeads)
	assert.Equal(t, 2, out.PendingLeads)
	assert.Equal(t, 1, out.ContactedLeads)
	assert.Equal(t, 1, out.ApprovedLeads)
	assert.Equal(t, 1, out.RejectedLeads)
	assert.Equal(t, 20, out.ConversionRate)
	assert.Equal(t, 1, out.TotalProjects)
	assert.Equal(t, "150000", out.Revenue.String())
	assert.Equal(t, 4, out.PendingFollowUps)
	assert.Equal(t, 4, out.OverdueFollowUps)
	assert.Equal(t, map[string]int{"low": 1, "medium": 1, "high": 3}, out.LeadsByPriority)
}

func TestGetSummary_SinLeadsVisibles(t *testing.T) {
	s := memory.NewStore()
	memory.SeedDemoData(s)
	other := entity.Actor{UserID: "99", Role: entity.RoleSales}

	out, err := newDashboard(s).GetSummary(context.Background(), other)
	require.NoError(t, err)
	assert.Zero(t, out.TotalLeads)
	assert.Zero(t, out.ConversionRate)
	assert.True(t, out.Revenue.IsZero())
	assert.Zero(t, out.PendingFollowUps)
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0, analytics.ConversionRate(0, 0))
	assert.Equal(t, 33, analytics.ConversionRate(1, 3))
	assert.Equal(t, 67, analytics.ConversionRate(2, 3))
	assert.Equal(t, 100, analytics.ConversionRate(4, 4))
}
