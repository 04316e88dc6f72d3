package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario autenticado al que se factura y se envía la factura por email.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	CompanyName  string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
