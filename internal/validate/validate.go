package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bgdnlp/facatura/internal/apperr"
)

var (
	cuiPattern     = regexp.MustCompile(`^(RO)?\d{6,10}$`)
	vatPattern     = regexp.MustCompile(`^[A-Z]{2}\d{2,12}$`)
	phonePattern   = regexp.MustCompile(`^\+?[0-9\s\-()]{8,20}$`)
	websitePattern = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}/?.*$`)
	ibanPattern    = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{4,30}$`)
)

// New returns a validator with the Romanian fiscal formats registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cui", matches(cuiPattern))
	_ = v.RegisterValidation("vatnum", matches(vatPattern))
	_ = v.RegisterValidation("rophone", matches(phonePattern))
	_ = v.RegisterValidation("website", matches(websitePattern))
	_ = v.RegisterValidation("iban", matches(ibanPattern))
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// BadRequest converts a validator error into a validation error with one
// message line per failing field. Non-validator errors pass through.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fieldMessage(fe))
	}
	return apperr.New(apperr.KindValidation, strings.Join(lines, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "cui":
		return fmt.Sprintf("invalid %s format, expected RO###### or ######", field)
	case "vatnum":
		return fmt.Sprintf("invalid %s format, expected country code followed by digits", field)
	case "email":
		return "invalid email format"
	case "rophone":
		return "invalid phone number format"
	case "website":
		return "invalid website format, expected http(s)://example.com"
	case "iban":
		return "invalid IBAN format"
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid", field)
	}
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
