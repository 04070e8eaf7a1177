package utils

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validations
	v.RegisterValidation("minor_units", validateMinorUnits)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldMessage describes the first failing field of a validation error in
// the form used by the API. It returns "" for errors that are not
// validation errors.
func FieldMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return "Missing field in body: " + fe.Field()
	}
	return "Invalid field in body: " + fe.Field()
}

// Major-unit amounts must be finite and convert to at least one minor unit
// that still fits in an int64.
func validateMinorUnits(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	minor := math.Round(amount * 100)
	return minor >= 1 && minor < math.MaxInt64
}
