package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

// HandleValidationErrors maps ReadJSON failures to a 400. Validator
// violations get a field-by-field payload, anything else a generic message.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors := make([]validationError, 0, len(errs))
		for _, validationErr := range errs {
			validationErrors = append(validationErrors, validationError{
				ActualTag: validationErr.ActualTag(),
				Namespace: validationErr.Namespace(),
				Kind:      validationErr.Kind().String(),
				Type:      validationErr.Type().String(),
				Value:     fmt.Sprintf("%v", validationErr.Value()),
				Param:     validationErr.Param(),
			})
		}

		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{
			"status": iris.StatusBadRequest,
			"title":  "Validation Error",
			"errors": validationErrors,
		})
		return
	}

	CreateError(iris.StatusBadRequest, "Bad Request", "Invalid request body", ctx)
}
