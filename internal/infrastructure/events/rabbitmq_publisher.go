package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/CRM-api/internal/application/ports"
)

var _ ports.EventPublisher = (*RabbitMQPublisher)(nil)

// RabbitMQPublisher publica eventos como JSON en un exchange topic durable.
// La routing key es el tipo de evento (lead.created, followup.overdue, ...).
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex // amqp.Channel no admite publicaciones concurrentes
	ch       *amqp.Channel
	exchange string
}

// NewRabbitMQPublisher conecta, abre un canal y declara el exchange.
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: conectar: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declarar exchange %s: %w", exchange, err)
	}
	return &RabbitMQPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish serializa el evento y lo publica como mensaje persistente.
func (p *RabbitMQPublisher) Publish(ctx context.Context, evt ports.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("rabbitmq: serializar evento: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		evt.Type,   // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    evt.ID,
			Timestamp:    evt.OccurredAt,
			Type:         evt.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: publicar %s: %w", evt.Type, err)
	}
	return nil
}

// Healthy informa si la conexión sigue abierta (usado por /health).
func (p *RabbitMQPublisher) Healthy() bool {
	return p.conn != nil && !p.conn.IsClosed()
}

// Close cierra canal y conexión.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil && err != amqp.ErrClosed {
		return err
	}
	if err := p.conn.Close(); err != nil && err != amqp.ErrClosed {
		return err
	}
	return nil
}
