// Package validation faz a checagem de presença dos formulários antes de
// qualquer chamada ao backend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

var Validate *validator.Validate

const (
	notBlankTag = "notblank"
	clockTag    = "clock"
)

func init() {
	Validate = validator.New()

	// Usa o nome do campo JSON nas mensagens, que é o que o painel conhece
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(notBlankTag, notBlank)
	_ = Validate.RegisterValidation(clockTag, clockText)
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return !fl.Field().IsZero()
}

// clockText aceita vazio; a obrigatoriedade fica com notblank
func clockText(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if str == "" {
		return true
	}
	_, err := utils.TextToTime(str)
	return err == nil
}

// FieldError descreve um campo rejeitado do formulário
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors agrega os campos rejeitados
type Errors []FieldError

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("campos inválidos: %s", strings.Join(fields, ", "))
}

// Fields retorna os nomes dos campos rejeitados
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// Struct valida o formulário e devolve Errors quando algum campo falha
func Struct(form any) error {
	err := Validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", notBlankTag:
		return "campo obrigatório"
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "email":
		return "email inválido"
	case clockTag:
		return "horário inválido, use HH:MM"
	default:
		return "valor inválido"
	}
}
