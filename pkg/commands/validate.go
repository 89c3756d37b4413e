package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCommand is returned when a command fails validation.
var ErrInvalidCommand = errors.New("invalid command")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cmd against its struct tags using go-playground/validator.
// Field failures are reported by field name and rule.
func Validate(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidCommand, strings.Join(fields, ", "))
}
