package validator

import (
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"

	"resa/shared/failure"
)

var validate *val.Validate

// phonePattern accepts French numbers in national ("0612345678"),
// international ("+33612345678") or bare national-significant ("612345678")
// form, once separators have been stripped.
var phonePattern = regexp.MustCompile(`^(?:\+33|0)?[1-9]\d{8}$`)

var phoneSeparators = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")

func registerPhoneValidation(field val.FieldLevel) bool {
	number, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return phonePattern.MatchString(phoneSeparators.Replace(number))
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package tags. If the struct is invalid according to the validation rules,
// an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
