package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrRoleMismatch       = errors.New("el rol no coincide con el usuario")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserAlreadyExists  = errors.New("el usuario ya existe")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
