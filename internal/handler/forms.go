package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the typed form structs at the route boundary, before
// any value reaches business logic.
var validate = validator.New()

type signupForm struct {
	Username string `form:"username" validate:"required,max=64"`
	Email    string `form:"email" validate:"omitempty,max=255"`
	Password string `form:"password" validate:"required,max=128"`
}

type signinForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type quoteForm struct {
	Guests         string   `form:"guests"`
	Services       []string `form:"services"`
	ContactName    string   `form:"contact_name" validate:"max=255"`
	ContactPhone   string   `form:"contact_phone" validate:"max=64"`
	AdditionalInfo string   `form:"additional_info" validate:"max=2000"`
}

// GuestCount coerces the guests field to a non-negative integer.
// Missing or non-numeric input counts as zero guests rather than
// failing the submission; negative input clamps to zero.
func (f quoteForm) GuestCount() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.Guests))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// formErrorMessage maps a validation failure to the notice shown on
// the originating form.
func formErrorMessage(err error, requiredMsg string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return requiredMsg
			}
		}
	}
	return "Invalid input."
}
