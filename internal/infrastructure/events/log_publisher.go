// Package events implementa ports.EventPublisher: sobre el log estructurado
// (por defecto) y sobre un exchange topic de RabbitMQ.
package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/CRM-api/internal/application/ports"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher registra cada evento como una línea de log. Nunca falla.
type LogPublisher struct {
	log zerolog.Logger
}

// NewLogPublisher construye el publicador sobre el logger dado.
func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish escribe el evento en el log a nivel info.
func (p *LogPublisher) Publish(_ context.Context, evt ports.Event) error {
	e := p.log.Info().
		Str("event_id", evt.ID).
		Str("event", evt.Type).
		Str("entity_id", evt.EntityID).
		Time("occurred_at", evt.OccurredAt)
	if evt.ActorID != "" {
		e = e.Str("actor_id", evt.ActorID)
	}
	for k, v := range evt.Data {
		e = e.Str(k, v)
	}
	e.Msg("evento de dominio")
	return nil
}
