// Package apierror provides the error taxonomy shared by services and the
// HTTP layer. All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, DB
// errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a business error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	// KindNotFound: a referenced entity (caixa, comanda, venda, operador,
	// produto) does not exist.
	KindNotFound
	// KindConflict: the operation is disallowed in the current state (caixa
	// já aberto, comanda não fechada, venda já registrada no caixa).
	KindConflict
	// KindInvalid: caller-supplied values break a business rule (valor pago
	// insuficiente, quantidade não positiva).
	KindInvalid
)

// Error is the canonical business error carried from service to handler.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }
func Invalid(msg string) *Error  { return &Error{Kind: KindInvalid, Msg: msg} }

// KindOf extracts the taxonomy kind from any error chain.
// Unrecognized errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// StatusCode maps an error to its HTTP status. Conflicts map to 400 rather
// than 409, matching the behavior the API has always exposed to clients.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validacao", Fields: fields}
}
