package contract

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Raj6773/Resume/resume/model"
)

// Kind classifies why a submission was rejected.
type Kind string

const (
	KindNone         Kind = ""
	KindMissingField Kind = "missing_field"
	KindInvalidEmail Kind = "invalid_email"
	KindInvalidPhone Kind = "invalid_phone"
)

const (
	MessageMissingField = "Please fill all fields!"
	MessageInvalidEmail = "Invalid email format! Example: example@gmail.com"
	MessageInvalidPhone = "Phone number must be 10-15 digits!"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidPhone = errors.New("invalid phone")
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// IsValidEmail reports whether text looks like local@domain.tld.
func IsValidEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// IsValidPhone reports whether text is 10 to 15 digits and nothing else.
func IsValidPhone(text string) bool {
	return phonePattern.MatchString(text)
}

// Result is the outcome of validating a submission.
type Result struct {
	OK      bool     `json:"ok"`
	Kind    Kind     `json:"kind,omitempty"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// Err returns nil for an accepted submission and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationError{Kind: r.Kind, Message: r.Message, Fields: r.Fields}
}

// ValidationError carries a rejected Result through error returns.
type ValidationError struct {
	Kind    Kind
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}

// Unwrap maps the kind onto its sentinel error.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindMissingField:
		return ErrMissingField
	case KindInvalidEmail:
		return ErrInvalidEmail
	case KindInvalidPhone:
		return ErrInvalidPhone
	default:
		return nil
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("resume_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("resume_phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	return v
}

// Validate checks a candidate before rendering. Missing fields are reported
// first, then the email shape, then the phone shape.
func Validate(c model.Candidate) Result {
	err := validate.Struct(c)
	if err == nil {
		return Result{OK: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Kind: KindMissingField, Message: MessageMissingField}
	}

	var missing []string
	badEmail, badPhone := false, false
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "min":
			missing = append(missing, fe.Field())
		case "resume_email":
			badEmail = true
		case "resume_phone":
			badPhone = true
		}
	}

	switch {
	case len(missing) > 0:
		return Result{Kind: KindMissingField, Message: MessageMissingField, Fields: missing}
	case badEmail:
		return Result{Kind: KindInvalidEmail, Message: MessageInvalidEmail, Fields: []string{"email"}}
	case badPhone:
		return Result{Kind: KindInvalidPhone, Message: MessageInvalidPhone, Fields: []string{"phone"}}
	default:
		return Result{Kind: KindMissingField, Message: MessageMissingField}
	}
}
