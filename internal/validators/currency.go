package validators

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyPattern = regexp.MustCompile(`^[a-z]{3}$`)

var registerOnce sync.Once

// IsCurrencyCode reports whether code is a lowercase three-letter ISO 4217 code.
func IsCurrencyCode(code string) bool {
	return currencyPattern.MatchString(code)
}

func currency(fl validator.FieldLevel) bool {
	return IsCurrencyCode(fl.Field().String())
}

// Register installs the custom rules on gin's binding validator.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("currency", currency)
	})
	return err
}
