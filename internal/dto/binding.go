package dto

import (
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations attaches the domain-specific binding rules to
// gin's validator engine. Call once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("enduse", validEndUse)
}

// validEndUse accepts the declared end-use enum values.
func validEndUse(fl validator.FieldLevel) bool {
	switch domain.EndUse(fl.Field().String()) {
	case domain.ForResale, domain.NotForResale:
		return true
	}
	return false
}
