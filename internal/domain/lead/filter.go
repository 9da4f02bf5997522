package lead

import (
	"strings"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"golang.org/x/text/cases"
)

// PriorityBucket agrupa la prioridad 1–10 en tres rangos.
type PriorityBucket string

const (
	PriorityAny    PriorityBucket = ""
	PriorityLow    PriorityBucket = "low"    // 1–3
	PriorityMedium PriorityBucket = "medium" // 4–6
	PriorityHigh   PriorityBucket = "high"   // 7–10
)

// BucketOf clasifica una prioridad.
func BucketOf(priority int) PriorityBucket {
	switch {
	case priority >= 7:
		return PriorityHigh
	case priority >= 4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ParsePriorityBucket acepta low/medium/high; "" y "all" significan sin filtro.
func ParsePriorityBucket(s string) (PriorityBucket, bool) {
	switch PriorityBucket(strings.ToLower(strings.TrimSpace(s))) {
	case "", "all":
		return PriorityAny, true
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	}
	return PriorityAny, false
}

// ParseStatusFilter acepta un estado válido; "" y "all" significan sin filtro.
func ParseStatusFilter(s string) (entity.LeadStatus, bool) {
	st := entity.LeadStatus(strings.ToLower(strings.TrimSpace(s)))
	if st == "" || st == "all" {
		return "", true
	}
	return st, st.Valid()
}

// Filter criterios de búsqueda sobre leads. Los criterios vacíos no filtran.
// OwnerID lo fija quien llama (el caso de uso) para los actores no admin.
type Filter struct {
	Search   string
	Status   entity.LeadStatus
	Priority PriorityBucket
	OwnerID  string
}

// Matches aplica todos los criterios (AND). La búsqueda es una subcadena
// sin distinción de mayúsculas sobre nombre, empresa o email.
func (f Filter) Matches(l *entity.Lead) bool {
	if l == nil {
		return false
	}
	if f.OwnerID != "" && l.OwnerID != f.OwnerID {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Priority != PriorityAny && BucketOf(l.Priority) != f.Priority {
		return false
	}
	term := strings.TrimSpace(f.Search)
	if term == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, field := range []string{l.Name, l.Company, l.Email} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// Apply devuelve los leads que cumplen el filtro conservando el orden de entrada.
func (f Filter) Apply(leads []*entity.Lead) []*entity.Lead {
	out := make([]*entity.Lead, 0, len(leads))
	for _, l := range leads {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
