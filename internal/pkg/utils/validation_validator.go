package utils

import (
	"reflect"
	"strings"

	"brm-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("response_status", validateResponseStatus)
	validate.RegisterValidation("question_type", validateQuestionType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateResponseStatus(fl validator.FieldLevel) bool {
	return IsResponseStatus(fl.Field().String())
}

func validateQuestionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.QuestionTypeText,
		constvars.QuestionTypeNumber,
		constvars.QuestionTypeMultipleChoice,
		constvars.QuestionTypeCheckboxes:
		return true
	}
	return false
}
