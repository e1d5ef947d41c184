package service

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"

	"healthtrack/internal/apperr"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

func fieldErr(field, constraint, msg string) apperr.FieldError {
	return apperr.FieldError{Field: field, Constraint: constraint, Message: msg}
}

// checkLenBounds validates a string length against [min, max]; max <= 0 means
// unbounded above.
func checkLenBounds(errs *[]apperr.FieldError, field, v string, min, max int) {
	if len(v) < min {
		*errs = append(*errs, fieldErr(field, "minLength",
			fmt.Sprintf("%s must be at least %d characters long", field, min)))
		return
	}
	if max > 0 && len(v) > max {
		*errs = append(*errs, fieldErr(field, "maxLength",
			fmt.Sprintf("%s must be at most %d characters long", field, max)))
	}
}

func checkEmail(errs *[]apperr.FieldError, field, v string) {
	if _, err := mail.ParseAddress(v); err != nil {
		*errs = append(*errs, fieldErr(field, "email", "must be a valid email address"))
	}
}

func checkPhone(errs *[]apperr.FieldError, field, v string) {
	if v != "" && !phonePattern.MatchString(v) {
		*errs = append(*errs, fieldErr(field, "phone", "must be a valid phone number"))
	}
}

func checkURL(errs *[]apperr.FieldError, field, v string) {
	if v == "" {
		return
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		*errs = append(*errs, fieldErr(field, "url", "must be a valid URL"))
	}
}

func checkNonNegative(errs *[]apperr.FieldError, field string, v *float64) {
	if v != nil && *v < 0 {
		*errs = append(*errs, fieldErr(field, "min", field+" must not be negative"))
	}
}

func checkNonNegativeInt(errs *[]apperr.FieldError, field string, v *int) {
	if v != nil && *v < 0 {
		*errs = append(*errs, fieldErr(field, "min", field+" must not be negative"))
	}
}

func checkEnum(errs *[]apperr.FieldError, field, v string, valid func(string) bool) {
	if v != "" && !valid(v) {
		*errs = append(*errs, fieldErr(field, "enum", field+" has an unknown value"))
	}
}
