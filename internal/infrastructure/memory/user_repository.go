package memory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.SessionRepository = (*SessionRepo)(nil)
)

// UserRepo directorio de usuarios en memoria.
type UserRepo struct {
	h handle
}

// NewUserRepository construye el adaptador sobre el Store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{h: handle{s: s}}
}

// GetByID devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

// FindByEmail busca sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) find(match func(u *entity.User) bool) *entity.User {
	var out *entity.User
	r.h.read(func(d *dataset) {
		for _, u := range d.users {
			if match(u) {
				c := *u
				out = &c
				return
			}
		}
	})
	return out
}

// SessionRepo lista de tokens revocados por logout.
type SessionRepo struct {
	h   handle
	now func() time.Time
}

// NewSessionRepository construye el adaptador sobre el Store.
func NewSessionRepository(s *Store) *SessionRepo {
	return &SessionRepo{h: handle{s: s}, now: time.Now}
}

// Revoke marca el jti como revocado hasta until y purga las entradas ya expiradas.
func (r *SessionRepo) Revoke(_ context.Context, tokenID string, until time.Time) error {
	now := r.now()
	return r.h.write(func(d *dataset) error {
		for id, exp := range d.revoked {
			if !exp.After(now) {
				delete(d.revoked, id)
			}
		}
		d.revoked[tokenID] = until
		return nil
	})
}

// IsRevoked informa si el jti fue revocado y aún no expiró.
func (r *SessionRepo) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	now := r.now()
	revoked := false
	r.h.read(func(d *dataset) {
		exp, ok := d.revoked[tokenID]
		revoked = ok && exp.After(now)
	})
	return revoked, nil
}
