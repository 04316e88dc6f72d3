// seed_catalog genera el script SQL que puebla el catálogo (segmentos, fabricantes, componentes,
// modelos, configuración estándar y componentes alternos) desde un archivo YAML.
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalog.yaml]
// Por defecto busca catalog.yaml en el directorio actual. -latin1 decodifica exportaciones ISO-8859-1.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v2"
)

type catalog struct {
	Segments      []named     `yaml:"segments"`
	Manufacturers []named     `yaml:"manufacturers"`
	Components    []component `yaml:"components"`
	Models        []model     `yaml:"models"`
}

type named struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type component struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Price string `yaml:"price"`
}

type model struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Price        string      `yaml:"price"`
	MinQty       int         `yaml:"min_qty"`
	Segment      string      `yaml:"segment"`
	Manufacturer string      `yaml:"manufacturer"`
	Image        string      `yaml:"image"`
	Defaults     []string    `yaml:"defaults"`
	Alternates   []alternate `yaml:"alternates"`
}

type alternate struct {
	Replaces string `yaml:"replaces"`
	With     string `yaml:"with"`
}

func main() {
	latin1 := flag.Bool("latin1", false, "el YAML viene en ISO-8859-1")
	flag.Parse()

	path := "catalog.yaml"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir YAML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer YAML: %v\n", err)
		os.Exit(1)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo inválido: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	if err := os.WriteFile(outPath, []byte(renderSQL(cat)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d componentes, %d modelos\n", outPath, len(cat.Components), len(cat.Models))
}

// parseCatalog decodifica y valida referencias (componentes, segmentos y fabricantes existentes, precios >= 0).
func parseCatalog(data []byte) (*catalog, error) {
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decodificar: %w", err)
	}

	comps := make(map[string]struct{}, len(cat.Components))
	for _, c := range cat.Components {
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("componente sin id o nombre")
		}
		if err := checkPrice(c.Price); err != nil {
			return nil, fmt.Errorf("componente %s: %w", c.ID, err)
		}
		comps[c.ID] = struct{}{}
	}
	segs := ids(cat.Segments)
	mfgs := ids(cat.Manufacturers)

	for i := range cat.Models {
		m := &cat.Models[i]
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("modelo sin id o nombre")
		}
		if err := checkPrice(m.Price); err != nil {
			return nil, fmt.Errorf("modelo %s: %w", m.ID, err)
		}
		if m.MinQty <= 0 {
			m.MinQty = 1
		}
		if _, ok := segs[m.Segment]; m.Segment != "" && !ok {
			return nil, fmt.Errorf("modelo %s: segmento %q inexistente", m.ID, m.Segment)
		}
		if _, ok := mfgs[m.Manufacturer]; m.Manufacturer != "" && !ok {
			return nil, fmt.Errorf("modelo %s: fabricante %q inexistente", m.ID, m.Manufacturer)
		}
		for _, d := range m.Defaults {
			if _, ok := comps[d]; !ok {
				return nil, fmt.Errorf("modelo %s: componente por defecto %q inexistente", m.ID, d)
			}
		}
		for _, a := range m.Alternates {
			if _, ok := comps[a.With]; !ok {
				return nil, fmt.Errorf("modelo %s: componente alterno %q inexistente", m.ID, a.With)
			}
			if _, ok := comps[a.Replaces]; a.Replaces != "" && !ok {
				return nil, fmt.Errorf("modelo %s: componente reemplazado %q inexistente", m.ID, a.Replaces)
			}
		}
	}
	return &cat, nil
}

func checkPrice(s string) error {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("precio %q inválido", s)
	}
	if p.IsNegative() {
		return fmt.Errorf("precio %q negativo", s)
	}
	return nil
}

func ids(list []named) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, n := range list {
		out[n.ID] = struct{}{}
	}
	return out
}

// renderSQL genera inserts idempotentes. Las filas de configuración de cada modelo se reemplazan completas
// para que el orden (seq) siga al del YAML.
func renderSQL(cat *catalog) string {
	var b bytes.Buffer
	b.WriteString("-- Catálogo del configurador de vehículos\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	writeNamed(&b, "segments", cat.Segments)
	writeNamed(&b, "manufacturers", cat.Manufacturers)

	if len(cat.Components) > 0 {
		b.WriteString("INSERT INTO components (id, name, comp_type, price) VALUES\n")
		for i, c := range cat.Components {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s)%s\n",
				escapeSQL(c.ID), escapeSQL(c.Name), escapeSQL(c.Type), strings.TrimSpace(c.Price), sep(i, len(cat.Components)))
		}
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, comp_type = EXCLUDED.comp_type, price = EXCLUDED.price;\n\n")
	}

	for _, m := range cat.Models {
		fmt.Fprintf(&b, "-- Modelo %s\n", m.ID)
		fmt.Fprintf(&b, "INSERT INTO models (id, name, price, min_qty, segment_id, manufacturer_id, image_path)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', %s, %d, %s, %s, %s)\n",
			escapeSQL(m.ID), escapeSQL(m.Name), strings.TrimSpace(m.Price), m.MinQty,
			sqlNullable(m.Segment), sqlNullable(m.Manufacturer), sqlNullable(m.Image))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, min_qty = EXCLUDED.min_qty,\n")
		b.WriteString("  segment_id = EXCLUDED.segment_id, manufacturer_id = EXCLUDED.manufacturer_id, image_path = EXCLUDED.image_path;\n")

		fmt.Fprintf(&b, "DELETE FROM default_configs WHERE model_id = '%s';\n", escapeSQL(m.ID))
		for i, d := range m.Defaults {
			fmt.Fprintf(&b, "INSERT INTO default_configs (id, model_id, component_id) VALUES ('%s-d%d', '%s', '%s');\n",
				escapeSQL(m.ID), i+1, escapeSQL(m.ID), escapeSQL(d))
		}
		fmt.Fprintf(&b, "DELETE FROM alternate_components WHERE model_id = '%s';\n", escapeSQL(m.ID))
		for i, a := range m.Alternates {
			fmt.Fprintf(&b, "INSERT INTO alternate_components (id, model_id, component_id, alt_component_id) VALUES ('%s-a%d', '%s', %s, '%s');\n",
				escapeSQL(m.ID), i+1, escapeSQL(m.ID), sqlNullable(a.Replaces), escapeSQL(a.With))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeNamed(b *bytes.Buffer, table string, list []named) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(b, "INSERT INTO %s (id, name) VALUES\n", table)
	for i, n := range list {
		fmt.Fprintf(b, "  ('%s', '%s')%s\n", escapeSQL(n.ID), escapeSQL(n.Name), sep(i, len(list)))
	}
	b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n\n")
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func sqlNullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
