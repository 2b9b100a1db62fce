package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// Struct validates a single struct object, field names in the
// returned message follow json tags
func Struct(s interface{}) error {
	if s == nil {
		return fmt.Errorf("is nil")
	}
	if !isStruct(s) {
		return fmt.Errorf("not a struct")
	}
	var validationErrors validator.ValidationErrors
	var invalidValidationError *validator.InvalidValidationError

	err := get().Struct(s)
	if err == nil {
		return nil
	}

	if errors.As(err, &validationErrors) {
		parts := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			parts = append(parts, fmt.Sprintf("%s %s", namespace(fieldErr), fieldErr.Tag()))
		}
		return errors.New(strings.Join(parts, "; "))
	} else if errors.As(err, &invalidValidationError) {
		return fmt.Errorf("invalid validation error: %w", err)
	} else {
		return fmt.Errorf("unknown validation error: %w", err)
	}
}

// namespace drops the root struct name: "Invoice.items[0].taxes[1]" -> "items[0].taxes[1]"
func namespace(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func isStruct(s interface{}) bool {
	r := reflect.TypeOf(s)
	if r.Kind() == reflect.Ptr {
		r = r.Elem()
	}
	return r.Kind() == reflect.Struct
}
