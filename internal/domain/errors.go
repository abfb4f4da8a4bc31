package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrStationNotFound    = errors.New("estación no encontrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// ErrInsufficientData indica que el historial de ventas tiene menos días
	// observados que el mínimo de la política: el pronóstico se rehúsa a adivinar.
	// No es una falla; el par estación/combustible simplemente se omite.
	ErrInsufficientData = errors.New("historial de ventas insuficiente para pronosticar")

	// ErrNoInventoryData indica que nunca se ha registrado un snapshot de
	// inventario para el par estación/combustible.
	ErrNoInventoryData = errors.New("sin datos de inventario registrados")
)
