// file: internals/helpers/validator.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	// optional leading +, then 10-15 digits
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			v := strings.TrimSpace(fl.Field().String())
			if v == "" {
				return true // emptiness is handled by required/omitempty
			}
			return phoneRe.MatchString(v)
		})
	})
	return validate
}

// ValidateStruct runs the shared validator and converts every failure into a
// field-addressable list; it never panics and never returns raw tag names to
// the client.
func ValidateStruct(s any) []FieldError {
	if err := Validator().Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return []FieldError{{Field: "_", Message: "Geçersiz istek gövdesi"}}
		}
		out := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, FieldError{
				Field:   fieldName(fe),
				Message: messageFor(fe),
			})
		}
		return out
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	// lower-case first rune so API field names match the JSON contract
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Bu alan zorunludur"
	case "email":
		return "Geçerli bir e-posta adresi giriniz"
	case "min":
		return fmt.Sprintf("En az %s karakter olmalıdır", fe.Param())
	case "max":
		return fmt.Sprintf("En fazla %s karakter olmalıdır", fe.Param())
	case "gte":
		return fmt.Sprintf("En az %s olmalıdır", fe.Param())
	case "gt":
		return fmt.Sprintf("%s değerinden büyük olmalıdır", fe.Param())
	case "oneof":
		return fmt.Sprintf("Geçerli değerler: %s", fe.Param())
	case "phone":
		return "Geçerli bir telefon numarası giriniz (başında + olabilir, 10-15 rakam)"
	case "uuid":
		return "Geçersiz kimlik"
	default:
		return "Geçersiz değer"
	}
}
