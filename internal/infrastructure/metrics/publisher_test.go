package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	iodto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CRM-api/internal/application/ports"
)

type stubPublisher struct {
	err   error
	calls int
}

func (s *stubPublisher) Publish(context.Context, ports.Event) error {
	s.calls++
	return s.err
}

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out iodto.Metric
	require.NoError(t, m.Write(&out))
	switch {
	case out.Counter != nil:
		return out.Counter.GetValue()
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	}
	t.Fatalf("métrica sin valor")
	return 0
}

func TestInstrumentedPublisher_ActualizaContadores(t *testing.T) {
	next := &stubPublisher{}
	p := NewInstrumentedPublisher(next)
	ctx := context.Background()

	created := value(t, leadsCreated)
	changes := value(t, leadStatusChanges.WithLabelValues("pending", "approved"))
	projects := value(t, projectsCreated)
	ok := value(t, eventsPublished.WithLabelValues(ports.EventLeadStatusChanged, "ok"))

	require.NoError(t, p.Publish(ctx, ports.NewEvent(ports.EventLeadCreated, "2", "10", nil)))
	require.NoError(t, p.Publish(ctx, ports.NewEvent(ports.EventLeadStatusChanged, "1", "10", map[string]string{"from": "pending", "to": "approved"})))
	require.NoError(t, p.Publish(ctx, ports.NewEvent(ports.EventProjectCreated, "1", "p1", nil)))

	assert.Equal(t, 3, next.calls)
	assert.Equal(t, created+1, value(t, leadsCreated))
	assert.Equal(t, changes+1, value(t, leadStatusChanges.WithLabelValues("pending", "approved")))
	assert.Equal(t, projects+1, value(t, projectsCreated))
	assert.Equal(t, ok+1, value(t, eventsPublished.WithLabelValues(ports.EventLeadStatusChanged, "ok")))
}

func TestInstrumentedPublisher_CuentaErrores(t *testing.T) {
	boom := errors.New("broker caído")
	p := NewInstrumentedPublisher(&stubPublisher{err: boom})
	before := value(t, eventsPublished.WithLabelValues(ports.EventFollowUpCompleted, "error"))
	completed := value(t, followUpsCompleted)

	err := p.Publish(context.Background(), ports.NewEvent(ports.EventFollowUpCompleted, "2", "f1", nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before+1, value(t, eventsPublished.WithLabelValues(ports.EventFollowUpCompleted, "error")))
	assert.Equal(t, completed+1, value(t, followUpsCompleted))
}

func TestSetOverdueFollowUps(t *testing.T) {
	SetOverdueFollowUps(7)
	assert.Equal(t, float64(7), value(t, followUpsOverdue))
	SetOverdueFollowUps(0)
	assert.Equal(t, float64(0), value(t, followUpsOverdue))
}
