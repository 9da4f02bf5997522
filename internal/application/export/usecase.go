package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/leads"
	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/domain/repository"
)

// Format formato de exportación.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ParseFormat vacío = csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: formato %q (use csv, json o pdf)", domain.ErrInvalidInput, s)
}

// ContentType tipo MIME del formato.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// File archivo listo para enviarse como adjunto.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// ExportUseCase exporta el listado filtrado de leads visible para el actor.
type ExportUseCase struct {
	leadRepo repository.LeadRepository
	pdf      ports.LeadReportGenerator
	opts     Options
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso. pdf puede ser nil (formato pdf no disponible).
func NewExportUseCase(leadRepo repository.LeadRepository, pdf ports.LeadReportGenerator, opts Options) *ExportUseCase {
	return &ExportUseCase{leadRepo: leadRepo, pdf: pdf, opts: opts, now: time.Now}
}

// Export lee una instantánea filtrada y la serializa en el formato pedido.
func (uc *ExportUseCase) Export(ctx context.Context, actor entity.Actor, in dto.LeadFilterRequest, format string) (*File, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	filter, err := leads.FilterFor(actor, in)
	if err != nil {
		return nil, err
	}
	list, err := uc.leadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var content []byte
	switch f {
	case FormatJSON:
		content, err = ToJSON(list)
	case FormatPDF:
		if uc.pdf == nil {
			return nil, fmt.Errorf("%w: exportación pdf no disponible", domain.ErrInvalidInput)
		}
		content, err = uc.pdf.GenerateLeadReport(list, now)
	default:
		content = ToCSV(list, uc.opts)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", f, err)
	}
	return &File{
		Name:        Filename(DefaultBaseName, string(f), now),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}
