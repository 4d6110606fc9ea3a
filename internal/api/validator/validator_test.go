package validator_test

import (
	"testing"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/vtuhub/vtugateway/internal/api/validator"
)

type purchasePayload struct {
	ServiceType    string `validate:"required,oneof=airtime data cable_tv electricity"`
	Amount         int64  `validate:"required,gt=0"`
	RecipientPhone string `validate:"omitempty,msisdn"`
	IdempotencyKey string `validate:"required"`
}

func TestXValidator_Validate(t *testing.T) {
	v := validator.NewXValidator(validatorv10.New())

	t.Run("Valid payload passes", func(t *testing.T) {
		errs := v.Validate(purchasePayload{
			ServiceType:    "airtime",
			Amount:         500,
			RecipientPhone: "08031234567",
			IdempotencyKey: "key-1",
		})

		assert.Empty(t, errs)
	})

	t.Run("Empty recipient is allowed", func(t *testing.T) {
		errs := v.Validate(purchasePayload{
			ServiceType:    "electricity",
			Amount:         2000,
			IdempotencyKey: "key-2",
		})

		assert.Empty(t, errs)
	})

	t.Run("Malformed phone fails msisdn rule", func(t *testing.T) {
		errs := v.Validate(purchasePayload{
			ServiceType:    "airtime",
			Amount:         500,
			RecipientPhone: "12345",
			IdempotencyKey: "key-3",
		})

		assert.Len(t, errs, 1)
		assert.Equal(t, validator.MSISDNTag, errs[0].Tag)
	})

	t.Run("Zero amount and unknown service type are reported", func(t *testing.T) {
		errs := v.Validate(purchasePayload{
			ServiceType:    "lottery",
			IdempotencyKey: "key-4",
		})

		assert.Len(t, errs, 2)
	})
}

func TestValidateMSISDN(t *testing.T) {
	v := validator.NewXValidator(validatorv10.New())

	type phone struct {
		Number string `validate:"msisdn"`
	}

	valid := []string{"08031234567", "07011234567", "09091234567", "08101234567"}
	for _, number := range valid {
		assert.Empty(t, v.Validate(phone{Number: number}), number)
	}

	invalid := []string{"0803123456", "080312345678", "18031234567", "0603 123456", "+2348031234567"}
	for _, number := range invalid {
		assert.NotEmpty(t, v.Validate(phone{Number: number}), number)
	}
}
