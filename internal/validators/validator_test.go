package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Login   string `json:"login,omitempty" validate:"required"`
	Comment string `json:"-" validate:"max=3"`
	Count   int    `validate:"lte=10"`
}

func TestStructValidator_JSONFieldNames(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), sample{Comment: "long", Count: 11})
	assert.Equal(t, map[string][]string{
		"login":   {"This field is required."},
		"comment": {"Ensure this field has no more than 3 characters."},
		"count":   {"Ensure this value is less than or equal to 10."},
	}, validationFields(t, err))
}

func TestStructValidator_Partial(t *testing.T) {
	v := NewStructValidator()

	// only Count is checked
	err := v.Validate(context.Background(), sample{Count: 11}, "Count")
	assert.Equal(t, map[string][]string{
		"count": {"Ensure this value is less than or equal to 10."},
	}, validationFields(t, err))

	assert.NoError(t, v.Validate(context.Background(), sample{}, "Count"))
}

func TestStructValidator_NotAStruct(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), "plain string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
