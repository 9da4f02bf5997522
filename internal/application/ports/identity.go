package ports

import (
	"context"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// IdentityProvider valida credenciales. Devuelve domain.ErrUnauthorized si no coinciden.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}
