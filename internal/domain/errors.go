package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Taxonomía del cliente:
//   - ErrUnauthorized: credencial ausente, rechazada o expirada → teardown de sesión.
//   - ErrRejected: petición bien formada pero rechazada por reglas de negocio.
//   - ErrNotFound: la entidad identificada no existe.
//   - ErrTransport: fallo de red/conectividad; nunca se reintenta implícitamente.
var (
	ErrUnauthorized = errors.New("no autorizado")
	ErrRejected     = errors.New("petición rechazada")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrTransport    = errors.New("fallo de transporte")

	ErrInsufficientCredits = errors.New("créditos insuficientes")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrForbidden           = errors.New("acceso denegado")
)

// Rejectedf construye un rechazo de negocio con la razón legible del backend.
// errors.Is(err, ErrRejected) sigue funcionando sobre el resultado.
func Rejectedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrRejected}, args...)...)
}

// Transportf envuelve un fallo de conectividad preservando la causa.
func Transportf(cause error) error {
	return fmt.Errorf("%w: %v", ErrTransport, cause)
}
