package memory

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con repositorios atados a una copia del dataset.
// Mantiene el lock de escritura durante todo el callback; la copia reemplaza al
// estado vigente solo si fn termina sin error (commit), si no se descarta (rollback).
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn dentro de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	followUpRepo repository.FollowUpRepository,
	projectRepo repository.ProjectRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx := r.s.data.clone()
	h := handle{s: r.s, tx: tx}
	if err := fn(&LeadRepo{h: h}, &FollowUpRepo{h: h}, &ProjectRepo{h: h}); err != nil {
		return err
	}
	r.s.data = tx
	return nil
}
