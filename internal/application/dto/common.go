// Package dto define los contratos de entrada y salida de la capa HTTP.
package dto

import "github.com/shopspring/decimal"

// ErrorResponse es la respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"producto no encontrado"`
	// Available acompaña los errores de stock con la cantidad disponible.
	Available *decimal.Decimal `json:"available,omitempty"`
}

// MessageResponse es la respuesta genérica de operaciones sin cuerpo propio.
type MessageResponse struct {
	Message string `json:"message" example:"carrito vaciado"`
}
