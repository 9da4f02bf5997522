package ports

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a ella.
// Si fn devuelve error ningún cambio hecho a través de esos repositorios queda visible.
// Garantiza, por ejemplo, que aprobar un lead y crear su proyecto ocurran juntos o no ocurran.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		followUpRepo repository.FollowUpRepository,
		projectRepo repository.ProjectRepository,
	) error) error
}
