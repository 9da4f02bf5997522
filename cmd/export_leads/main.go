// export_leads genera offline el mismo archivo que GET /api/leads/export a partir
// del conjunto de datos de ejemplo (vista de admin).
//
// Uso: go run ./cmd/export_leads [-format csv|json|pdf] [-status approved] [-priority high]
//
//	[-search texto] [-encoding utf-8|windows-1252] [-out dir]
//
// -encoding windows-1252 sirve para abrir el CSV directamente en Excel en español.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/export"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
	"github.com/jhoicas/CRM-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/CRM-api/internal/infrastructure/pdf"
	"github.com/jhoicas/CRM-api/pkg/config"
)

func main() {
	format := flag.String("format", "csv", "csv, json o pdf")
	status := flag.String("status", "", "filtro de estado")
	priority := flag.String("priority", "", "filtro de prioridad: low, medium, high")
	search := flag.String("search", "", "búsqueda en nombre, empresa o email")
	enc := flag.String("encoding", "utf-8", "codificación del CSV: utf-8 o windows-1252")
	outDir := flag.String("out", ".", "directorio de salida")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	store := memory.NewStore()
	memory.SeedDemoData(store)
	loc := cfg.Export.Location()
	uc := export.NewExportUseCase(
		memory.NewLeadRepository(store),
		infrapdf.NewLeadReportGenerator(loc, cfg.Export.DateLayout),
		export.Options{Location: loc, DateLayout: cfg.Export.DateLayout},
	)

	admin := entity.Actor{UserID: memory.DemoAdminID, Name: "Admin User", Role: entity.RoleAdmin}
	file, err := uc.Export(context.Background(), admin, dto.LeadFilterRequest{
		Search:   *search,
		Status:   *status,
		Priority: *priority,
	}, *format)
	if err != nil {
		fail("exportar", err)
	}

	path := filepath.Join(*outDir, file.Name)
	if err := writeExport(path, file.Content, file.ContentType, *enc); err != nil {
		fail("escribir archivo", err)
	}
	fmt.Printf("Escrito %s (%d bytes)\n", path, len(file.Content))
}

// writeExport escribe el contenido en path y cierra el archivo antes de volver,
// también cuando falla la escritura.
func writeExport(path string, content []byte, contentType, enc string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.EqualFold(enc, "windows-1252") || !strings.HasPrefix(contentType, "text/csv") {
		_, err = f.Write(content)
		return err
	}
	// Caracteres sin equivalente en Windows-1252 se reemplazan en lugar de abortar
	w := transform.NewWriter(f, encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()))
	if _, err := w.Write(content); err != nil {
		return err
	}
	return w.Close()
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
