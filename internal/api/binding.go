package api

import (
	"encoding/json"                   // Decoding errors
	"errors"                          // Error inspection
	"payroll_tracker/internal/domain" // Validation errors
	"reflect"                         // Struct tags
	"strings"                         // Tag parsing

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin request binding
	"github.com/go-playground/validator/v10" // Validator behind binding tags
)

func init() {
	// Report rejected fields by their JSON names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName returns the JSON key of a struct field
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// bindJSON decodes and validates the body, turning every failure into field errors
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(domain.ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			out.Add(fe.Field(), validationMessage(fe))
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.ValidationErrors{{Field: typeErr.Field, Message: "has the wrong type"}}
	}
	return domain.ValidationErrors{{Field: "body", Message: "malformed request body"}}
}

// validationMessage renders a validator failure in plain words
func validationMessage(fe validator.FieldError) string {
	unit := "" // Length constraints on strings
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + unit
	case "lte", "max":
		return "must be at most " + fe.Param() + unit
	default:
		return "is invalid"
	}
}
