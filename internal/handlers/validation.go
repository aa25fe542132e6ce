package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"inventory/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Price bounds: at most 10 integer digits and 2 fractional digits.
const (
	moneyIntegerDigits  = 10
	moneyFractionDigits = 2
)

// fieldMessages holds the user-facing message per "<json field>.<tag>".
var fieldMessages = map[string]string{
	"productName.notblank":     "Product name is required",
	"productName.min":          "Product name must be between 1 and 100 characters",
	"productName.max":          "Product name must be between 1 and 100 characters",
	"productDescription.max":   "Product description cannot exceed 300 characters",
	"productPrice.required":    "Product price is required",
	"productPrice.positive":    "Product price must be greater than 0",
	"productPrice.money":       "numeric value out of bounds (<10 digits>.<2 digits> expected)",
	"productCategory.notblank": "Product category is required",
	"productCategory.max":      "Product category cannot exceed 50 characters",
	"productStock.required":    "Product stock is required",
	"productStock.gte":         "Product stock cannot be negative",
}

// newValidator builds a validator that reports JSON field names and
// understands decimal prices.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated from their exact string form so no digits are
	// lost to float rounding.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("positive", validatePositive); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
	return v
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(field.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// validatePositive reports whether a decimal is strictly greater than zero.
func validatePositive(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.IsPositive()
}

// validateMoney checks the digit bounds of a price. Trailing zeros in the
// fraction do not count against the bound.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	if !d.Equal(d.Truncate(moneyFractionDigits)) {
		return false
	}
	integerPart := d.Abs().Truncate(0).String()
	return len(integerPart) <= moneyIntegerDigits
}

// validateStruct runs the declarative checks on s and converts failures
// into a typed validation error.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Internal(err)
	}

	violations := make([]apperrors.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, apperrors.FieldViolation{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}
	return apperrors.Validation(violations)
}

func messageFor(e validator.FieldError) string {
	if msg, ok := fieldMessages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}
