package handlers

import (
	"time"

	"receiptai/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// minTaxYear is the oldest year the backend keeps documents for.
const minTaxYear = 2000

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator with the domain tags
// registered:
//
//	document_type - the field is "receipt" or "invoice"
//	tax_year      - the field is a year between 2000 and the current year
func NewValidator() echo.Validator {
	v := validator.New()

	_ = v.RegisterValidation("document_type", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDocumentType(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("tax_year", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= minTaxYear && year <= time.Now().Year()
	})

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
