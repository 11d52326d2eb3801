package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(f.Name)
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	switch cfg.Relay.Kind {
	case "emailjs":
		ej := cfg.Relay.EmailJS
		if ej.ServiceID == "" || ej.TemplateID == "" || ej.PublicKey == "" {
			return apperrors.NewValidationError("relay.emailjs", "service_id, template_id and public_key are required for the emailjs relay", nil)
		}
	case "smtp":
		if cfg.Relay.SMTP.Host == "" {
			return apperrors.NewValidationError("relay.smtp.host", "host is required for the smtp relay", nil)
		}
		if cfg.Relay.To == "" {
			return apperrors.NewValidationError("relay.to", "a destination address is required for the smtp relay", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// named by their YAML path.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.TrimPrefix(ve.Namespace(), "Config.")
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}
