package utils

import (
	"log"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var providerValidator validator.Func = func(fl validator.FieldLevel) bool {
	provider := fl.Field().String()
	for _, valid := range models.Providers {
		if provider == valid {
			return true
		}
	}
	return false
}

// InitValidator registers the custom binding rules.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("provider", providerValidator)
	} else {
		log.Fatalf("error register validation")
	}
}
