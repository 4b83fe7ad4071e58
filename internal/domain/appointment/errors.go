package appointment

import (
	"strings"
)

type ValidationKind string

const (
	KindMissingFields     ValidationKind = "MissingFields"
	KindInvalidName       ValidationKind = "InvalidName"
	KindInvalidPhone      ValidationKind = "InvalidPhone"
	KindInvalidDateFormat ValidationKind = "InvalidDateFormat"
	KindInvalidTimeFormat ValidationKind = "InvalidTimeFormat"
	KindUnknownService    ValidationKind = "UnknownService"
)

// Request field names, as they appear in the JSON body
const (
	FieldName    = "nome"
	FieldPhone   = "telefone"
	FieldService = "servico"
	FieldDate    = "data"
	FieldTime    = "hora"
)

// ValidationError is the tagged failure returned for a rejected booking request.
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
}

func newValidationError(kind ValidationKind, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields}
}

// NewUnknownServiceError is raised once the store confirms the service is absent.
func NewUnknownServiceError() *ValidationError {
	return newValidationError(KindUnknownService, FieldService)
}

// NewInvalidDateError is raised when the store rejects a well-formed but impossible date.
func NewInvalidDateError() *ValidationError {
	return newValidationError(KindInvalidDateFormat, FieldDate)
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + strings.Join(e.Fields, ", ")
}

// Message is the client-facing description of the failure.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case KindMissingFields:
		return "Campos obrigatórios ausentes: " + strings.Join(e.Fields, ", ")
	case KindInvalidName:
		return "Nome deve ter pelo menos 3 caracteres"
	case KindInvalidPhone:
		return "Telefone deve ter pelo menos 10 caracteres"
	case KindInvalidDateFormat:
		return "Data inválida. Use o formato YYYY-MM-DD"
	case KindInvalidTimeFormat:
		return "Hora inválida. Use o formato HH:MM"
	case KindUnknownService:
		return "Serviço não encontrado"
	default:
		return "Requisição inválida"
	}
}
