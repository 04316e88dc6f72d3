package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
segments:
  - {id: seg-1, name: Sedan}
manufacturers:
  - {id: mfg-1, name: "O'Brien Motors"}
components:
  - {id: c-1, name: Cloth seats, type: interior, price: "0"}
  - {id: c-2, name: Leather seats, type: interior, price: "1200.50"}
models:
  - id: m-1
    name: Sedan LX
    price: "20000"
    min_qty: 2
    segment: seg-1
    manufacturer: mfg-1
    defaults: [c-1]
    alternates:
      - {replaces: c-1, with: c-2}
`

func TestParseCatalog_Valido(t *testing.T) {
	cat, err := parseCatalog([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, cat.Models, 1)
	assert.Equal(t, 2, cat.Models[0].MinQty)
	assert.Equal(t, []string{"c-1"}, cat.Models[0].Defaults)
	assert.Equal(t, "c-2", cat.Models[0].Alternates[0].With)
}

func TestParseCatalog_MinQtyPorDefecto(t *testing.T) {
	cat, err := parseCatalog([]byte(`
components: [{id: c-1, name: x, type: t, price: "1"}]
models: [{id: m-1, name: M, price: "10"}]
`))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Models[0].MinQty)
}

func TestParseCatalog_Errores(t *testing.T) {
	cases := map[string]string{
		"componente inexistente": `models: [{id: m-1, name: M, price: "1", defaults: [nope]}]`,
		"alterno inexistente":    `models: [{id: m-1, name: M, price: "1", alternates: [{with: nope}]}]`,
		"precio negativo":        `components: [{id: c-1, name: x, type: t, price: "-5"}]`,
		"precio inválido":        `models: [{id: m-1, name: M, price: "abc"}]`,
		"segmento inexistente":   `models: [{id: m-1, name: M, price: "1", segment: s-9}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestRenderSQL_EscapaYConservaOrden(t *testing.T) {
	cat, err := parseCatalog([]byte(sampleYAML))
	require.NoError(t, err)

	sql := renderSQL(cat)
	assert.Contains(t, sql, "('mfg-1', 'O''Brien Motors')")
	assert.Contains(t, sql, "('c-2', 'Leather seats', 'interior', 1200.50)")
	assert.Contains(t, sql, "VALUES ('m-1', 'Sedan LX', 20000, 2, 'seg-1', 'mfg-1', NULL)")
	assert.Contains(t, sql, "INSERT INTO default_configs (id, model_id, component_id) VALUES ('m-1-d1', 'm-1', 'c-1');")
	assert.Contains(t, sql, "VALUES ('m-1-a1', 'm-1', 'c-1', 'c-2');")
	assert.Less(t, strings.Index(sql, "DELETE FROM default_configs"), strings.Index(sql, "'m-1-d1'"))
}
