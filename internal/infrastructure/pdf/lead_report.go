// Package pdf implementa el reporte PDF del listado de leads.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación  │  total de leads          │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  RESUMEN: pending / contacted / approved / rejected              │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Lead | Empresa | Email | Estado | Prio | Dueño | Seguim. │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 243, Green: 244, Blue: 246}
)

var _ ports.LeadReportGenerator = (*LeadReportGenerator)(nil)

// LeadReportGenerator implementa ports.LeadReportGenerator usando Maroto v2.
type LeadReportGenerator struct {
	loc        *time.Location
	dateLayout string
}

// NewLeadReportGenerator construye el generador. loc nil = time.Local; layout vacío = "1/2/2006".
func NewLeadReportGenerator(loc *time.Location, dateLayout string) *LeadReportGenerator {
	if loc == nil {
		loc = time.Local
	}
	if dateLayout == "" {
		dateLayout = "1/2/2006"
	}
	return &LeadReportGenerator{loc: loc, dateLayout: dateLayout}
}

// GenerateLeadReport genera el PDF y devuelve sus bytes.
func (g *LeadReportGenerator) GenerateLeadReport(leads []*entity.Lead, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("CRM Leads", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(leads), g.date(generatedAt)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(leads))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(leads)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de leads: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *LeadReportGenerator) date(t time.Time) string {
	return t.In(g.loc).Format(g.dateLayout)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y fecha (izq), total de leads (der).
func headerRow(total int, generated string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Reporte de Leads", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generated, props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(strconv.Itoa(total)+" leads", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

// summaryRow: conteo por estado en el orden del pipeline.
func summaryRow(leads []*entity.Lead) core.Row {
	counts := make(map[entity.LeadStatus]int, len(entity.LeadStatuses))
	for _, l := range leads {
		counts[l.Status]++
	}
	cols := make([]core.Col, 0, len(entity.LeadStatuses))
	for _, st := range entity.LeadStatuses {
		cols = append(cols, col.New(3).Add(
			text.New(string(st), props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(counts[st]), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5,
			}),
		))
	}
	return row.New(13).Add(cols...)
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Lead", 2, align.Left),
		h("Empresa", 2, align.Left),
		h("Email", 3, align.Left),
		h("Estado", 1, align.Center),
		h("Prio.", 1, align.Center),
		h("Dueño", 2, align.Left),
		h("Seguimiento", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por lead, con franjas alternas.
func (g *LeadReportGenerator) tableRows(leads []*entity.Lead) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(truncate(s, 40), props.Text{
			Size: 7.5, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(leads))
	for i, l := range leads {
		followUp := "—"
		if l.FollowUpDate != nil {
			followUp = g.date(*l.FollowUpDate)
		}
		r := row.New(7).Add(
			cell(l.Name, 2, align.Left),
			cell(l.Company, 2, align.Left),
			cell(l.Email, 3, align.Left),
			cell(string(l.Status), 1, align.Center),
			cell(strconv.Itoa(l.Priority), 1, align.Center),
			cell(l.OwnerName, 2, align.Left),
			cell(followUp, 1, align.Center),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// truncate corta s a n runas agregando "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
