package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/folio/internal/relay"
)

// Field names a form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display and validation order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Label returns the human label for a field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldSubject:
		return "Subject"
	case FieldMessage:
		return "Message"
	default:
		return string(f)
	}
}

// Message is one contact-form submission.
type Message struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"notblank,address"`
	Subject string `validate:"notblank"`
	Body    string `validate:"notblank"`
}

// Get returns the value of field f.
func (m Message) Get(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldSubject:
		return m.Subject
	case FieldMessage:
		return m.Body
	default:
		return ""
	}
}

// With returns a copy of m with field f set to value.
func (m Message) With(f Field, value string) Message {
	switch f {
	case FieldName:
		m.Name = value
	case FieldEmail:
		m.Email = value
	case FieldSubject:
		m.Subject = value
	case FieldMessage:
		m.Body = value
	}
	return m
}

// IsZero reports whether every field is empty.
func (m Message) IsZero() bool {
	return m == Message{}
}

// Envelope converts m for the relay.
func (m Message) Envelope() relay.Envelope {
	return relay.Envelope{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: m.Body,
	}
}

var (
	// ErrEmptyField is matched by every *EmptyFieldError via errors.Is.
	ErrEmptyField = errors.New("required field is empty")
	// ErrInvalidEmail reports an email that is not of the form local@domain.
	ErrInvalidEmail = errors.New("invalid email address")
)

// EmptyFieldError names the first empty field.
type EmptyFieldError struct {
	Field Field
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field.Label())
}

// Unwrap lets callers match ErrEmptyField.
func (e *EmptyFieldError) Unwrap() error {
	return ErrEmptyField
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

	fieldsByStructName = map[string]Field{
		"Name":    FieldName,
		"Email":   FieldEmail,
		"Subject": FieldSubject,
		"Body":    FieldMessage,
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
			return addressPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidateAll returns every problem with m keyed by field, or nil when m is
// valid. An empty email reports ErrEmptyField only.
func ValidateAll(m Message) map[Field]error {
	err := validatorInstance().Struct(m)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[Field]error{FieldName: err}
	}

	problems := make(map[Field]error, len(ves))
	for _, fe := range ves {
		field := fieldsByStructName[fe.StructField()]
		if _, seen := problems[field]; seen {
			continue
		}
		switch fe.Tag() {
		case "notblank":
			problems[field] = &EmptyFieldError{Field: field}
		case "address":
			problems[field] = ErrInvalidEmail
		default:
			problems[field] = fmt.Errorf("%s failed validation for tag '%s'", field.Label(), fe.Tag())
		}
	}
	return problems
}

// Validate returns the first problem with m: an *EmptyFieldError for the
// first empty field in form order, otherwise ErrInvalidEmail.
func Validate(m Message) error {
	problems := ValidateAll(m)
	if len(problems) == 0 {
		return nil
	}
	for _, f := range Fields {
		if err, ok := problems[f]; ok && errors.Is(err, ErrEmptyField) {
			return err
		}
	}
	for _, f := range Fields {
		if err, ok := problems[f]; ok {
			return err
		}
	}
	return nil
}
