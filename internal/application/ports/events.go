package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Tipos de evento de dominio (también usados como routing key en AMQP).
const (
	EventLeadCreated       = "lead.created"
	EventLeadUpdated       = "lead.updated"
	EventLeadStatusChanged = "lead.status_changed"
	EventLeadDeleted       = "lead.deleted"
	EventProjectCreated    = "project.created"
	EventFollowUpScheduled = "followup.scheduled"
	EventFollowUpCompleted = "followup.completed"
	EventFollowUpOverdue   = "followup.overdue"
)

// Event notificación publicada después de confirmar una mutación.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	ActorID    string            `json:"actor_id,omitempty"`
	EntityID   string            `json:"entity_id"`
	Data       map[string]string `json:"data,omitempty"`
}

// EventPublisher publica eventos de dominio. Un error de publicación nunca revierte la mutación.
type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NewEvent construye un evento con id y fecha.
func NewEvent(eventType, actorID, entityID string, data map[string]string) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		ActorID:    actorID,
		EntityID:   entityID,
		Data:       data,
	}
}

// Notify publica los eventos ignorando errores (solo se registran en el log).
// Se invoca después del commit: la mutación ya es definitiva.
func Notify(ctx context.Context, pub EventPublisher, events ...Event) {
	if pub == nil {
		return
	}
	for _, evt := range events {
		if err := pub.Publish(ctx, evt); err != nil {
			log.Warn().Err(err).Str("event", evt.Type).Str("entity_id", evt.EntityID).Msg("no se pudo publicar el evento")
		}
	}
}
