// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgety/internal/monthyear"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_year", validateMonthYear)
		_ = v.RegisterValidation("period_status", validatePeriodStatus)
	}
}

func validateMonthYear(fl validator.FieldLevel) bool {
	_, err := monthyear.Parse(fl.Field().String())
	return err == nil
}

func validatePeriodStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PENDING", "ACTIVE", "INACTIVE":
		return true
	}
	return false
}
