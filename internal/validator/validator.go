// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// passwordClasses are the character classes a password must cover:
// uppercase, lowercase, digit, and a non-alphanumeric character.
var passwordClasses = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z]`),
	regexp.MustCompile(`[a-z]`),
	regexp.MustCompile(`\d`),
	regexp.MustCompile(`[^a-zA-Z0-9]`),
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password_complexity", validatePasswordComplexity)
		_ = v.RegisterValidation("user_role", validateUserRole)
	}
}

func validatePasswordComplexity(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	for _, class := range passwordClasses {
		if !class.MatchString(password) {
			return false
		}
	}
	return true
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Admin", "User":
		return true
	}
	return false
}
