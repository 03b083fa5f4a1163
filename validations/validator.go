package validations

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCityRule installs the "city" rule on Gin's validator engine. A
// city name is valid when it contains at least one non-space character.
// Must be called once before routes are served.
func RegisterCityRule() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		//nolint:errcheck // ignore error
		v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
