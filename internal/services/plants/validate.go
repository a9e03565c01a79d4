package plants

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"plant-care-api/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// bcryptMaxBytes is the longest input bcrypt accepts. The limit is in bytes, not runes.
const bcryptMaxBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= bcryptMaxBytes
	})
	return v
}

// messages maps "Struct.Field" to the message shown for any failed rule on it.
type messages map[string]string

// check validates s and turns the first failure into a models.ValidationError.
func check(s any, msgs messages) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	if msg, ok := msgs[first.StructField()+"."+first.Tag()]; ok {
		return models.NewValidationError(msg)
	}
	if msg, ok := msgs[first.StructField()]; ok {
		return models.NewValidationError(msg)
	}
	return models.NewValidationError("Invalid " + first.Field())
}
