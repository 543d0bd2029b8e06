package controllers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
}

// bindingErrors converts validator errors from a failed form bind into
// per-field messages suitable for re-rendering the form.
func bindingErrors(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			msg, ok := fieldMessages[e.Tag()]
			if !ok {
				msg = fmt.Sprintf("failed on the %q rule", e.Tag())
			}
			errList = append(errList, map[string]string{e.Field(): msg})
		}
		return errList
	}

	errList = append(errList, map[string]string{"form": err.Error()})
	return errList
}
