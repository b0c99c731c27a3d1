package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires domain-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("swipe_action", validateSwipeAction); err != nil {
		return err
	}
	return nil
}

func validateSwipeAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "like", "pass":
		return true
	}
	return false
}
