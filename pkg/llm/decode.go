package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator used for decoded replies
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Decode trims the reply text, unmarshals it into dest and validates the
// result. Any failure is reported as ErrMalformedReply.
func Decode(text string, dest interface{}) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyReply
	}

	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if err := Validator().Struct(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return nil
}
