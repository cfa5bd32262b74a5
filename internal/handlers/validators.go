package handlers

import (
	"sync"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// currencycode accepts only codes present in the currency registry.
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			_, found := domain.LookupCurrency(fl.Field().String())
			return found
		})
	})
}
