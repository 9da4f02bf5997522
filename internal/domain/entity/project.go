package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus estado de ejecución de un proyecto.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Valid informa si el estado es conocido.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project trabajo derivado de un lead aprobado. Existe como máximo uno por LeadID.
type Project struct {
	ID                  string
	LeadID              string
	OwnerID             string // dueño del lead de origen
	Name                string
	Description         string
	Status              ProjectStatus
	AssignedManagerID   string
	AssignedManagerName string
	EstimatedValue      decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Clone copia el proyecto (decimal es inmutable).
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
