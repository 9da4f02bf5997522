package memory

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

var _ ports.IdentityProvider = (*DemoIdentityProvider)(nil)

// DemoIdentityProvider valida credenciales contra el directorio de usuarios en memoria.
// No es un límite de seguridad: existe para que el flujo de login sea realista.
type DemoIdentityProvider struct {
	users *UserRepo
}

// NewDemoIdentityProvider construye el proveedor sobre el Store.
func NewDemoIdentityProvider(s *Store) *DemoIdentityProvider {
	return &DemoIdentityProvider{users: NewUserRepository(s)}
}

// HashPassword devuelve el hash bcrypt usado al sembrar el directorio.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Authenticate devuelve ErrUnauthorized tanto si el email no existe como si la contraseña no coincide.
func (p *DemoIdentityProvider) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	u, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}
