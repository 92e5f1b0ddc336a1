package validator

import (
	"log"
	"regexp"

	"adboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// E.164-like: optional leading +, first digit non-zero, 2-15 digits total.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// registerCustomRules registers all custom validation functions on the given
// validator instance. Registration failure is a startup bug.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("phone", validatePhone)
	mustRegister("is-user-role", validateUserRole)
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	return phoneRegex.MatchString(value)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}
