package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	// Nigerian MSISDN in local format, e.g. 08031234567.
	msisdnRegex = `^0[789][01]\d{8}$`
)

const (
	MSISDNTag = "msisdn"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	MSISDNTag: ValidateMSISDN,
}

func ValidateMSISDN(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return regexp.MustCompile(msisdnRegex).MatchString(phone)
}
