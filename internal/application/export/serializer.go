// Package export serializa listados de leads a CSV, JSON y PDF para descarga.
package export

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// DefaultBaseName prefijo de los archivos exportados.
const DefaultBaseName = "crm-leads"

// CSVHeader columnas del CSV, en orden.
var CSVHeader = []string{
	"Name", "Company", "Email", "Phone", "Status", "Priority", "Requirements",
	"Owner", "Created Date", "Last Updated", "Follow-up Date", "Notes",
}

// Options formato de fechas de las celdas del CSV.
type Options struct {
	Location   *time.Location // nil = time.Local
	DateLayout string         // vacío = "1/2/2006"
}

func (o Options) date(t time.Time) string {
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	layout := o.DateLayout
	if layout == "" {
		layout = "1/2/2006"
	}
	return t.In(loc).Format(layout)
}

// ToCSV genera el CSV: filas separadas por "\n", sin salto final.
// Requirements siempre va entre comillas y Notes cuando no está vacío; el resto de
// columnas solo si contienen coma, comillas o salto de línea. Las comillas internas se duplican.
func ToCSV(leads []*entity.Lead, opts Options) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(CSVHeader, ","))
	for _, l := range leads {
		followUp := ""
		if l.FollowUpDate != nil {
			followUp = opts.date(*l.FollowUpDate)
		}
		notes := ""
		if l.Notes != "" {
			notes = quote(l.Notes)
		}
		row := []string{
			field(l.Name),
			field(l.Company),
			field(l.Email),
			field(l.Phone),
			string(l.Status),
			strconv.Itoa(l.Priority),
			quote(l.Requirements),
			field(l.OwnerName),
			opts.date(l.CreatedAt),
			opts.date(l.UpdatedAt),
			followUp,
			notes,
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return []byte(b.String())
}

// ToJSON serializa los leads como arreglo JSON indentado con dos espacios.
func ToJSON(leads []*entity.Lead) ([]byte, error) {
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, *dto.NewLeadResponse(l))
	}
	return json.MarshalIndent(out, "", "  ")
}

// Filename arma "<base>-YYYY-MM-DD.<ext>" con la fecha en UTC.
func Filename(base, ext string, now time.Time) string {
	if base == "" {
		base = DefaultBaseName
	}
	return base + "-" + now.UTC().Format("2006-01-02") + "." + strings.TrimPrefix(ext, ".")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func field(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return quote(s)
	}
	return s
}
