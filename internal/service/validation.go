package service

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxviazov/talent-agency-service/internal/auth"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// validate is safe for concurrent use and caches struct metadata, so one instance serves every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "mediaurl", func(fl validator.FieldLevel) bool {
		return isMediaURL(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return len(auth.PasswordPolicyViolations(fl.Field().String())) == 0
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tag, err))
	}
}

// isMediaURL accepts absolute http(s) URLs and root-relative paths such as the
// /uploads/... URLs the upload endpoint hands out.
func isMediaURL(s string) bool {
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		_, err := url.ParseRequestURI(s)
		return err == nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// check runs the Validation Gate: every failing field is reported, never just the first.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fe = append(fe, FieldError{Field: fieldPath(e), Message: fieldMessage(e)})
	}
	return newInvalidInput(fe)
}

// fieldPath drops the struct name: "ModelInput.images[2]" becomes "images[2]".
func fieldPath(e validator.FieldError) string {
	_, path, found := strings.Cut(e.Namespace(), ".")
	if !found {
		return e.Field()
	}
	return path
}

func fieldMessage(e validator.FieldError) string {
	tag, _, _ := strings.Cut(e.Tag(), "|")
	if tag == "len" && strings.Contains(e.Tag(), "mediaurl") {
		tag = "mediaurl"
	}
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "slug":
		return "must contain only lowercase letters, numbers, and hyphens"
	case "mediaurl":
		return "must be an http(s) URL or a path starting with /"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(e.Param()), ", ")
	case "datetime":
		return "must be an RFC 3339 date-time"
	case "password":
		return strings.Join(auth.PasswordPolicyViolations(fmt.Sprint(e.Value())), "; ")
	case "gt":
		return "must be greater than " + e.Param()
	case "lt":
		return "must be less than " + e.Param()
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at most %s characters", e.Param())
	default:
		return "is invalid"
	}
}
