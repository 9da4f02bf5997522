package metrics

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/application/ports"
)

var _ ports.EventPublisher = (*InstrumentedPublisher)(nil)

// InstrumentedPublisher decora un EventPublisher: actualiza los contadores de
// dominio según el tipo de evento y cuenta el resultado de cada publicación.
type InstrumentedPublisher struct {
	next ports.EventPublisher
}

// NewInstrumentedPublisher envuelve next.
func NewInstrumentedPublisher(next ports.EventPublisher) *InstrumentedPublisher {
	return &InstrumentedPublisher{next: next}
}

// Publish registra el evento en las métricas y delega.
func (p *InstrumentedPublisher) Publish(ctx context.Context, evt ports.Event) error {
	switch evt.Type {
	case ports.EventLeadCreated:
		RecordLeadCreated()
	case ports.EventLeadStatusChanged:
		RecordStatusChange(evt.Data["from"], evt.Data["to"])
	case ports.EventProjectCreated:
		RecordProjectCreated()
	case ports.EventFollowUpCompleted:
		RecordFollowUpCompleted()
	}

	err := p.next.Publish(ctx, evt)
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventsPublished.WithLabelValues(evt.Type, result).Inc()
	return err
}
