package utils

import (
	"helpora-service/internal/pkg/profile"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("service_category", validateServiceCategory)
	validate.RegisterValidation("district", validateDistrict)
	validate.RegisterValidation("availability", validateAvailability)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateServiceCategory(fl validator.FieldLevel) bool {
	return profile.PolicyFor(fl.Field().String()).Known
}

func validateDistrict(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, district := range profile.Districts {
		if district == value {
			return true
		}
	}
	return false
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "yes" || value == "no"
}
