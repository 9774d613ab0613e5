package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

// convertValidationError normalizes validator errors into gradedit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gradediterrors.NewValidationError(field, msg, err)
	}

	return gradediterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
