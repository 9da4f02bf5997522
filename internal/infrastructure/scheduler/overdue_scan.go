// Package scheduler ejecuta tareas periódicas con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/infrastructure/metrics"
)

// OverdueSource entrega los seguimientos vencidos (followup.FollowUpUseCase).
type OverdueSource interface {
	Overdue(ctx context.Context, now time.Time) ([]*entity.FollowUp, error)
}

// OverdueScan marca los seguimientos vencidos: actualiza el gauge, registra cada
// uno en el log y publica followup.overdue.
type OverdueScan struct {
	source OverdueSource
	events ports.EventPublisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewOverdueScan construye el job.
func NewOverdueScan(source OverdueSource, events ports.EventPublisher, log zerolog.Logger) *OverdueScan {
	return &OverdueScan{source: source, events: events, log: log, now: time.Now}
}

// Run ejecuta una pasada y devuelve la cantidad de vencidos.
func (s *OverdueScan) Run(ctx context.Context) (int, error) {
	now := s.now()
	overdue, err := s.source.Overdue(ctx, now)
	if err != nil {
		return 0, err
	}
	metrics.SetOverdueFollowUps(len(overdue))
	for _, f := range overdue {
		s.log.Warn().
			Str("follow_up_id", f.ID).
			Str("lead_id", f.LeadID).
			Str("company", f.Company).
			Time("scheduled_date", f.ScheduledDate).
			Msg("seguimiento vencido")
		ports.Notify(ctx, s.events, ports.NewEvent(ports.EventFollowUpOverdue, "", f.ID, map[string]string{
			"lead_id":        f.LeadID,
			"owner_id":       f.OwnerID,
			"scheduled_date": f.ScheduledDate.Format(time.RFC3339),
		}))
	}
	return len(overdue), nil
}

// Start programa el job con la expresión cron dada y devuelve el scheduler en marcha.
// El llamador debe invocar Stop() al apagar.
func Start(schedule string, scan *OverdueScan) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		n, err := scan.Run(context.Background())
		if err != nil {
			scan.log.Error().Err(err).Msg("scan de seguimientos vencidos falló")
			return
		}
		scan.log.Debug().Int("overdue", n).Msg("scan de seguimientos vencidos")
	})
	if err != nil {
		return nil, fmt.Errorf("scheduler: expresión %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}
