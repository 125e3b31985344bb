package errors

import (
	"errors"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// TranslateValidatorError converts an error from the go-playground validator
// (internally just a map of field errors) into a single error with a user
// friendly message. Field messages are sorted so the output is stable.
func TranslateValidatorError(err error, trans ut.Translator) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	translated := validationErrors.Translate(trans)

	vals := make([]string, 0, len(translated))
	for _, value := range translated {
		vals = append(vals, value)
	}
	sort.Strings(vals)

	return errors.New(strings.Join(vals, " "))
}
