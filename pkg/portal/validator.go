package portal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground's validator and keeps the last run's
// field errors so callers can render them.
type Validator struct {
	driver *validator.Validate
	errors map[string]string
}

func GetDefaultValidator() *Validator {
	driver := validator.New(validator.WithRequiredStructEnabled())

	registerCustomValidations(driver)

	return &Validator{
		driver: driver,
		errors: map[string]string{},
	}
}

func (v *Validator) Passes(abstract any) (bool, error) {
	v.errors = map[string]string{}

	err := v.driver.Struct(abstract)
	if err == nil {
		return true, nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, item := range fieldErrors {
			v.errors[item.Field()] = fmt.Sprintf(
				"failed on the [%s] rule", item.Tag(),
			)
		}
	}

	return false, err
}

func (v *Validator) Rejects(abstract any) (bool, error) {
	passes, err := v.Passes(abstract)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	data, err := json.Marshal(v.errors)

	if err != nil {
		return ""
	}

	return string(data)
}
