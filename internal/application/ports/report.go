package ports

import (
	"time"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// LeadReportGenerator genera el reporte PDF del listado de leads.
type LeadReportGenerator interface {
	GenerateLeadReport(leads []*entity.Lead, generatedAt time.Time) ([]byte, error)
}
