package repository

import "errors"

var (
	// ErrNotFound indica que el recurso solicitado no existe.
	ErrNotFound = errors.New("not found")

	// ErrConflict indica un conflicto (ej: código duplicado al guardar).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indica que los datos de entrada son inválidos.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCodeUsed indica que el código de autorización ya fue consumido.
	ErrCodeUsed = errors.New("authorization code already used")

	// ErrCodeExpired indica que el código de autorización ya expiró.
	ErrCodeExpired = errors.New("authorization code expired")
)

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict verifica si el error es ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsCodeUsed verifica si el error es ErrCodeUsed.
func IsCodeUsed(err error) bool {
	return errors.Is(err, ErrCodeUsed)
}
