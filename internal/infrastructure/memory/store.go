// Package memory implementa los puertos de persistencia sobre un conjunto de datos
// en memoria protegido por un RWMutex. Los repositorios nunca devuelven punteros
// compartidos: todo lo que entra o sale se copia.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// dataset estado completo del CRM. Los slices conservan el orden de inserción.
type dataset struct {
	leads     []*entity.Lead
	followUps []*entity.FollowUp
	projects  []*entity.Project
	users     []*entity.User
	revoked   map[string]time.Time // jti → expiración del token
}

func newDataset() *dataset {
	return &dataset{revoked: make(map[string]time.Time)}
}

// clone copia profunda usada por TxRunner para trabajar sobre una instantánea.
func (d *dataset) clone() *dataset {
	c := &dataset{
		leads:     make([]*entity.Lead, 0, len(d.leads)),
		followUps: make([]*entity.FollowUp, 0, len(d.followUps)),
		projects:  make([]*entity.Project, 0, len(d.projects)),
		users:     make([]*entity.User, 0, len(d.users)),
		revoked:   make(map[string]time.Time, len(d.revoked)),
	}
	for _, l := range d.leads {
		c.leads = append(c.leads, l.Clone())
	}
	for _, f := range d.followUps {
		c.followUps = append(c.followUps, f.Clone())
	}
	for _, p := range d.projects {
		c.projects = append(c.projects, p.Clone())
	}
	for _, u := range d.users {
		uc := *u
		c.users = append(c.users, &uc)
	}
	for k, v := range d.revoked {
		c.revoked[k] = v
	}
	return c
}

// Store contenedor compartido por todos los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// handle acceso al dataset: directo (bloqueando el Store) o atado a una transacción.
type handle struct {
	s  *Store
	tx *dataset
}

func (h handle) read(fn func(d *dataset)) {
	if h.tx != nil {
		fn(h.tx)
		return
	}
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	fn(h.s.data)
}

func (h handle) write(fn func(d *dataset) error) error {
	if h.tx != nil {
		return fn(h.tx)
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return fn(h.s.data)
}
