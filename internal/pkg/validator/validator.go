package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate проверяет struct-теги и возвращает map поле -> нарушенный тег.
// nil означает, что всё валидно.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// ToFieldErrors разворачивает результат Validate в формат ответа API:
// {"field": ["failed validation: tag"]}.
func ToFieldErrors(fields map[string]string) map[string][]string {
	out := make(map[string][]string, len(fields))
	for field, tag := range fields {
		out[field] = []string{"failed validation: " + tag}
	}
	return out
}
