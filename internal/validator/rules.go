package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s is a real calendar date in strict
// YYYY-MM-DD form. The regexp guards against time.Parse accepting
// variants like "2024-1-5".
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func registerCustomRules(v *validator.Validate) {
	// dateformat: strict ISO calendar date
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})
}
