package entity

import "github.com/shopspring/decimal"

// Component representa una pieza del catálogo que puede formar parte de un vehículo.
type Component struct {
	ID    string
	Name  string
	Type  string // categoría: interior, exterior, motor, etc.
	Price decimal.Decimal
}

// DefaultConfig asocia un componente a la configuración estándar del fabricante para un modelo.
type DefaultConfig struct {
	ID          string
	ModelID     string
	ComponentID string
	Component   *Component
}

// AlternateComponent es una personalización del cliente: AltComponent sustituye al componente
// ComponentID en el modelo. Si un modelo tiene al menos una, reemplaza por completo a la configuración por defecto.
type AlternateComponent struct {
	ID             string
	ModelID        string
	ComponentID    string // componente por defecto reemplazado (informativo)
	AltComponentID string
	AltComponent   *Component
}
