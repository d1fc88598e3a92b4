package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError รายละเอียด error รายฟิลด์สำหรับใส่ใน response details
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct ตรวจสอบ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator errors เป็นข้อความที่อ่านง่าย
func GetValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	for _, fieldErr := range validationErrors {
		errs = append(errs, ValidationError{
			Field:   strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:],
			Message: validationMessage(fieldErr),
		})
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
