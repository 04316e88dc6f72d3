package entity

import "github.com/shopspring/decimal"

// ConfigurationSource indica de dónde salió la configuración efectiva de un modelo.
type ConfigurationSource string

const (
	SourceAlternate ConfigurationSource = "ALTERNATE"
	SourceDefault   ConfigurationSource = "DEFAULT"
)

// EffectiveComponent es un componente de la configuración efectiva con el precio leído al resolver.
type EffectiveComponent struct {
	Component Component
	UnitPrice decimal.Decimal
}

// Resolution es la configuración efectiva de un modelo en un instante dado.
// Components conserva el orden de lectura del catálogo.
type Resolution struct {
	ModelID    string
	Source     ConfigurationSource
	Components []EffectiveComponent
}

// Customized es true cuando la configuración proviene de componentes alternos.
func (r *Resolution) Customized() bool {
	return r != nil && r.Source == SourceAlternate
}
