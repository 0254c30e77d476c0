package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrTenantMissing = errors.New("tenant no especificado")
)

// Errores de la entrada de inventario. Cada paso del registro falla con su propio error
// para que el llamador distinga dónde se abortó la transacción.
var (
	ErrValidationFailed        = errors.New("validación de la entrada fallida")
	ErrSupplierNotFound        = errors.New("proveedor no encontrado")
	ErrSupplierInactive        = errors.New("proveedor inactivo")
	ErrLocationNotFound        = errors.New("ubicación no encontrada")
	ErrProductCreationFailed   = errors.New("no se pudo resolver o crear el producto")
	ErrLotCreationFailed       = errors.New("no se pudo crear el lote")
	ErrSerialCreationFailed    = errors.New("no se pudo crear el serial")
	ErrMovementRecordingFailed = errors.New("no se pudo registrar el movimiento")
)

// ValidationError detalla los campos inválidos de una petición. Se compara con
// errors.Is(err, ErrValidationFailed).
type ValidationError struct {
	Fields map[string]string
}

// Error implementa error con los campos ordenados para que el mensaje sea estable.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Unwrap permite errors.Is(err, ErrValidationFailed).
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
