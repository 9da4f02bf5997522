package followup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/followup"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
	"github.com/jhoicas/CRM-api/internal/infrastructure/memory"
)

var (
	admin = entity.Actor{UserID: memory.DemoAdminID, Name: "Admin User", Role: entity.RoleAdmin}
	sales = entity.Actor{UserID: memory.DemoSalesID, Name: "Sales Representative", Role: entity.RoleSales}
	other = entity.Actor{UserID: "99", Name: "Otra Comercial", Role: entity.RoleSales}
)

func setup(t *testing.T) (*memory.Store, *followup.FollowUpUseCase) {
	t.Helper()
	s := memory.NewStore()
	memory.SeedDemoData(s)
	uc := followup.NewFollowUpUseCase(memory.NewFollowUpRepository(s), memory.NewTxRunner(s), nil)
	return s, uc
}

func leadFollowUpDate(t *testing.T, s *memory.Store, id string) *time.Time {
	t.Helper()
	l, err := memory.NewLeadRepository(s).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, l)
	return l.FollowUpDate
}

func pendingOf(t *testing.T, s *memory.Store, leadID string) []*entity.FollowUp {
	t.Helper()
	pending := false
	list, err := memory.NewFollowUpRepository(s).List(context.Background(), repository.FollowUpFilter{LeadID: leadID, Completed: &pending})
	require.NoError(t, err)
	return list
}

func TestSchedule_SinFecha(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.Schedule(context.Background(), sales, "3", dto.ScheduleFollowUpRequest{Notes: "llamar"})
	assert.ErrorIs(t, err, domain.ErrMissingFollowUpDate)
}

func TestSchedule_CreaYLuegoReprograma(t *testing.T) {
	ctx := context.Background()
	s, uc := setup(t)
	first := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	out, err := uc.Schedule(ctx, sales, "3", dto.ScheduleFollowUpRequest{ScheduledDate: &first, Notes: "  llamar  "})
	require.NoError(t, err)
	assert.Equal(t, "3", out.LeadID)
	assert.Equal(t, "Ethan Wilson", out.LeadName)
	assert.Equal(t, "llamar", out.Notes)
	assert.False(t, out.Completed)
	assert.False(t, out.Overdue)
	require.NotNil(t, leadFollowUpDate(t, s, "3"))
	assert.True(t, first.Equal(*leadFollowUpDate(t, s, "3")))

	second := first.Add(24 * time.Hour)
	again, err := uc.Schedule(ctx, sales, "3", dto.ScheduleFollowUpRequest{ScheduledDate: &second, Notes: "reunión"})
	require.NoError(t, err)
	assert.Equal(t, out.ID, again.ID, "se reprograma el pendiente existente")
	assert.Len(t, pendingOf(t, s, "3"), 1)
	assert.True(t, second.Equal(*leadFollowUpDate(t, s, "3")))
}

func TestSchedule_Alcance(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)
	d := time.Now().Add(time.Hour)

	_, err := uc.Schedule(ctx, other, "2", dto.ScheduleFollowUpRequest{ScheduledDate: &d})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Schedule(ctx, admin, "nope", dto.ScheduleFollowUpRequest{ScheduledDate: &d})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete_NotasVaciasNoCompleta(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)

	_, err := uc.Complete(ctx, sales, "2", dto.CompleteFollowUpRequest{Notes: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyCompletionNotes)

	f, err := uc.Get(ctx, sales, "2")
	require.NoError(t, err)
	assert.False(t, f.Completed)
	assert.Equal(t, "Follow up on proposal sent", f.Notes)
}

func TestComplete_RecalculaFechaDelLead(t *testing.T) {
	ctx := context.Background()
	s, uc := setup(t)

	out, err := uc.Complete(ctx, sales, "2", dto.CompleteFollowUpRequest{Notes: "Cliente pidió nueva cotización"})
	require.NoError(t, err)
	assert.True(t, out.Completed)
	require.NotNil(t, out.CompletedAt)
	assert.Equal(t, "Cliente pidió nueva cotización", out.Notes)
	assert.False(t, out.Overdue)
	assert.Nil(t, leadFollowUpDate(t, s, "2"), "sin pendientes la fecha del lead queda vacía")

	_, err = uc.Complete(ctx, sales, "2", dto.CompleteFollowUpRequest{Notes: "otra vez"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestComplete_ConservaPendienteMasProximo(t *testing.T) {
	ctx := context.Background()
	s, uc := setup(t)
	later := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, memory.NewFollowUpRepository(s).Create(ctx, &entity.FollowUp{
		ID: "extra", LeadID: "5", OwnerID: memory.DemoSalesID, ScheduledDate: later, Notes: "segunda reunión",
	}))
	_, err := uc.Complete(ctx, sales, "4", dto.CompleteFollowUpRequest{Notes: "Propuesta presentada"})
	require.NoError(t, err)

	got := leadFollowUpDate(t, s, "5")
	require.NotNil(t, got)
	assert.True(t, later.Equal(*got))
}

func TestComplete_LeadBorradoNoBloquea(t *testing.T) {
	ctx := context.Background()
	s, uc := setup(t)
	require.NoError(t, memory.NewLeadRepository(s).Delete(ctx, "4"))

	out, err := uc.Complete(ctx, admin, "3", dto.CompleteFollowUpRequest{Notes: "Lead descartado"})
	require.NoError(t, err)
	assert.True(t, out.Completed)
}

func TestComplete_Alcance(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)

	_, err := uc.Complete(ctx, other, "1", dto.CompleteFollowUpRequest{Notes: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Complete(ctx, admin, "nope", dto.CompleteFollowUpRequest{Notes: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Get(ctx, other, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Estados(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)
	_, err := uc.Complete(ctx, sales, "1", dto.CompleteFollowUpRequest{Notes: "Hecho"})
	require.NoError(t, err)

	all, err := uc.List(ctx, sales, dto.FollowUpFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	for i := 1; i < len(all.Items); i++ {
		assert.False(t, all.Items[i].ScheduledDate.Before(all.Items[i-1].ScheduledDate))
	}

	pending, err := uc.List(ctx, sales, dto.FollowUpFilterRequest{State: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 3, pending.Total)

	completed, err := uc.List(ctx, sales, dto.FollowUpFilterRequest{State: "completed"})
	require.NoError(t, err)
	require.Equal(t, 1, completed.Total)
	assert.Equal(t, "1", completed.Items[0].ID)

	overdue, err := uc.List(ctx, admin, dto.FollowUpFilterRequest{State: "overdue"})
	require.NoError(t, err)
	assert.Equal(t, 3, overdue.Total)
	for _, f := range overdue.Items {
		assert.True(t, f.Overdue)
	}

	byLead, err := uc.List(ctx, admin, dto.FollowUpFilterRequest{LeadID: "5"})
	require.NoError(t, err)
	assert.Equal(t, 1, byLead.Total)

	none, err := uc.List(ctx, other, dto.FollowUpFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)

	_, err = uc.List(ctx, admin, dto.FollowUpFilterRequest{State: "later"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOverdue(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)

	list, err := uc.Overdue(ctx, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)

	list, err = uc.Overdue(ctx, time.Now())
	require.NoError(t, err)
	assert.Len(t, list, 4)
}
