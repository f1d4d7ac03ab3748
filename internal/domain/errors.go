package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrUpstream señala un fallo del backend REST de datos: la agregación
// completa de esa vista falla y se propaga al caller (no se computa sobre
// datos parciales a nivel de fetch). Los registros con referencias rotas
// dentro de un fetch exitoso NO son un error: se omiten y se cuentan.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUpstream     = errors.New("backend de datos no disponible")
)
