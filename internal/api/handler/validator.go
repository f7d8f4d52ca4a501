package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// All rules run against the full payload; every violation is collected, in
// struct declaration order, so a client learns about all input problems in
// a single round trip.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. On failure it returns a
// *domain.ValidationError holding every violation.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := &domain.ValidationError{Violations: make([]domain.FieldViolation, 0, len(ve))}
			for _, fe := range ve {
				out.Violations = append(out.Violations, domain.FieldViolation{
					Field:   fe.Field(),
					Message: fieldMessage(fe),
				})
			}
			return out
		}
		return err
	}
	return nil
}

// fieldMessages are the client-facing messages for the identity fields.
// They are keyed by field because each field carries a single message
// regardless of which of its rules failed, matching the API's historical
// contract.
var fieldMessages = map[string]string{
	"first_name": "El nombre es obligatorio",
	"last_name":  "El apellido es obligatorio",
	"email":      "Email no válido",
	"age":        "La edad debe ser un número positivo",
	"password":   "La contraseña debe tener al menos 5 caracteres",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
