package estatedomain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse representa o corpo de erro devolvido pelo backend imobiliário
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text devolve a mensagem legível do erro, se houver
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// APIError é uma resposta fora da faixa 2xx do backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("estate: %s %s respondeu %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("estate: %s %s respondeu %d", e.Method, e.Path, e.StatusCode)
}

// IsUnauthorized indica que o backend recusou o token da sessão
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRejected indica que o backend recusou os dados enviados
func (e *APIError) IsRejected() bool {
	return e.StatusCode == http.StatusBadRequest ||
		e.StatusCode == http.StatusConflict ||
		e.StatusCode == http.StatusUnprocessableEntity
}

// AsAPIError extrai um *APIError da cadeia de erros
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
