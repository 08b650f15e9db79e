package global

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validatorOnce sync.Once

// InitValidator creates the shared validator and registers the custom rules.
func InitValidator() {
	Validate = validator.New()

	// report json names in field errors
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = Validate.RegisterValidation("not_blank", validateNotBlank)
	_ = Validate.RegisterValidation("object_id", validateObjectID)
}

// GetValidator returns the shared validator, creating it on first use.
func GetValidator() *validator.Validate {
	validatorOnce.Do(func() {
		if Validate == nil {
			InitValidator()
		}
	})
	return Validate
}

// validateNotBlank rejects strings made only of whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateObjectID accepts a 24 character hex ObjectID.
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}
