package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"foodorders/internal/models"
)

// RegisterValidators installs the domain enums as binding tags so malformed
// payment methods and delivery statuses fail at bind time.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return models.ValidPaymentMethod(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("deliverystatus", func(fl validator.FieldLevel) bool {
		return models.ValidDeliveryStatus(fl.Field().String())
	})
}
