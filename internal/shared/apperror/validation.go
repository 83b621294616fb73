package apperror

import (
	"github.com/go-playground/validator/v10"
)

// FieldViolations checks v against its validate struct tags and returns the
// json names of every violating field, in declaration order. An empty slice
// means the value is valid.
func FieldViolations(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
	}
	return fields
}
