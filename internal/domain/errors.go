package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrQuantityBelowMinimum = fmt.Errorf("%w: cantidad menor al mínimo del modelo", ErrInvalidInput)
	ErrUnauthorized         = errors.New("no autorizado")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrForbidden            = errors.New("acceso denegado")
	ErrPersistence          = errors.New("fallo de persistencia")
	ErrNotification         = errors.New("fallo de notificación")
)

// Recursos que pueden no existir.
const (
	ResourceUser    = "user"
	ResourceModel   = "model"
	ResourceInvoice = "invoice"
)

// NotFoundError indica qué recurso no existe. errors.Is(err, ErrNotFound) es true para cualquier recurso.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return "recurso no encontrado (" + e.Resource + ")"
}

// Is permite comparar contra ErrNotFound y contra otro NotFoundError del mismo recurso.
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	var other *NotFoundError
	if errors.As(target, &other) {
		return other.Resource == e.Resource
	}
	return false
}

// NotFound construye el error tipado para resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

var (
	ErrUserNotFound    = NotFound(ResourceUser)
	ErrModelNotFound   = NotFound(ResourceModel)
	ErrInvoiceNotFound = NotFound(ResourceInvoice)
)
