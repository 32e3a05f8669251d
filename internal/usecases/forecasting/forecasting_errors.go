package forecasting

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
)

// Erros específicos para o contexto de previsão
var (
	// Erros de validação
	ErrEmptyBatch   = errors.New("observation batch is empty")
	ErrInvalidMonth = errors.New("forecast month must be between 1 and 12")

	ErrProfileNotFound = errors.New("profile not found")

	// Erros de leitura/escrita no armazenamento de perfis
	ErrUpstream = errors.New("upstream failure")
)

// ForecastError é um erro com contexto adicional para a previsão
type ForecastError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // Item envolvido (quando aplicável)
	Details  string // Detalhes adicionais
	Cause    error  // Erro original, com stack trace
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap permite errors.Is/As tanto no erro base quanto na causa
func (e *ForecastError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewForecastError cria um novo ForecastError
func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// upstreamError envolve uma falha do armazenamento como ErrUpstream
func upstreamError(cause error, entityID string, details string) *ForecastError {
	return &ForecastError{
		Err:      ErrUpstream,
		Code:     apiErrors.ErrDatabaseOperation,
		EntityID: entityID,
		Details:  details,
		Cause:    pkgerrors.WithStack(cause),
	}
}
