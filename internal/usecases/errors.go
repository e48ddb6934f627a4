// Package usecases reúne o que é comum às áreas do painel: o erro de ação que
// carrega o código da API e o aviso exibido ao usuário.
package usecases

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	estatedomain "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/domain"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"github.com/vfg2006/estate-admin-api/pkg/validation"
)

var (
	ErrInvalidForm   = errors.New("formulário inválido")
	ErrInvalidID     = errors.New("identificador inválido")
	ErrInvalidStatus = errors.New("status inválido")
	ErrBackend       = errors.New("falha no backend imobiliário")
)

const (
	MessageSessionExpired = "Sessão expirada, faça login novamente"
	MessageRequiredFields = "Preencha todos os campos obrigatórios"
	MessageInvalidFields  = "Verifique os campos do formulário"
	MessageInvalidStatus  = "Status inválido"
)

// ActionError é o erro devolvido pelas ações do painel
type ActionError struct {
	Err     error         // Erro base
	Code    string        // Código de erro para API
	Notice  domain.Notice // Aviso exibido ao usuário
	Details any           // Detalhes adicionais (campos inválidos, página vazia)
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Notice.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func NewActionError(err error, code string, message string) *ActionError {
	return &ActionError{
		Err:    err,
		Code:   code,
		Notice: domain.Failure(message),
	}
}

// AsActionError extrai um *ActionError da cadeia de erros
func AsActionError(err error) (*ActionError, bool) {
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr, true
	}
	return nil, false
}

// BackendFailure converte a falha de uma chamada ao backend no aviso do painel.
// A mensagem do backend tem prioridade; sem ela usa-se fallback.
func BackendFailure(err error, fallback string) *ActionError {
	if errors.Is(err, session.ErrMissingToken) {
		return NewActionError(err, apiErrors.ErrMissingToken, MessageSessionExpired)
	}

	apiErr, ok := estatedomain.AsAPIError(err)
	if !ok {
		return NewActionError(err, apiErrors.ErrCommunication, fallback)
	}

	message := fallback
	if apiErr.Message != "" {
		message = apiErr.Message
	}

	switch {
	case apiErr.IsUnauthorized():
		return NewActionError(err, apiErrors.ErrInvalidToken, message)
	case apiErr.IsForbidden():
		return NewActionError(err, apiErrors.ErrInsufficientPrivilege, message)
	case apiErr.IsNotFound():
		return NewActionError(err, apiErrors.ErrEstateNotFound, message)
	case apiErr.IsRejected():
		return NewActionError(err, apiErrors.ErrEstateRejected, message)
	default:
		return NewActionError(err, apiErrors.ErrExternalService, message)
	}
}

// InvalidForm monta o erro de formulário a partir da validação
func InvalidForm(err error) *ActionError {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &ActionError{
			Err:    errors.Join(ErrInvalidForm, err),
			Code:   apiErrors.ErrInvalidRequest,
			Notice: domain.Failure(MessageInvalidFields),
		}
	}

	code := apiErrors.ErrInvalidFormat
	message := MessageInvalidFields
	for _, fe := range fieldErrs {
		if fe.Rule == "required" || fe.Rule == "notblank" {
			code = apiErrors.ErrMissingRequiredData
			message = MessageRequiredFields
			break
		}
	}

	return &ActionError{
		Err:     ErrInvalidForm,
		Code:    code,
		Notice:  domain.Failure(message),
		Details: fieldErrs,
	}
}

// Validate roda a validação do formulário e devolve o erro já convertido
func Validate(form any) error {
	if err := validation.Struct(form); err != nil {
		return InvalidForm(err)
	}
	return nil
}

// ValidateStatus valida a mudança de status e confere se o novo status está entre os permitidos
func ValidateStatus(change *domain.StatusChange, allowed []string) error {
	if err := Validate(change); err != nil {
		return err
	}
	if !slices.Contains(allowed, change.Status) {
		return &ActionError{
			Err:    ErrInvalidStatus,
			Code:   apiErrors.ErrInvalidFormat,
			Notice: domain.Failure(MessageInvalidStatus),
			Details: validation.Errors{{
				Field:   "status",
				Rule:    "oneof",
				Message: "deve ser um de: " + strings.Join(allowed, " "),
			}},
		}
	}
	return nil
}
