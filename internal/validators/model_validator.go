package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/shopspring/decimal"
)

// JSON names of fields that a full (PUT) update must carry.
const (
	FieldEmail       = "email"
	FieldName        = "name"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldTimeMinutes = "time_minutes"
	FieldPrice       = "price"
)

const (
	priceDecimalPlaces = 2
	priceWholeDigits   = 3
)

var maxPrice = decimal.New(1, priceWholeDigits)

// ModelValidator validates the input models of the catalog.
//
// For update models the optional field names list the fields that must be
// present, which is how a full update differs from a partial one.
type ModelValidator struct {
	structs *StructValidator
}

func NewModelValidator() Validator {
	return &ModelValidator{structs: NewStructValidator()}
}

func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.structs.Validate(ctx, value)
	case *models.User:
		return v.structs.Validate(ctx, *value)

	case models.Credentials:
		return v.structs.Validate(ctx, value)
	case *models.Credentials:
		return v.structs.Validate(ctx, *value)

	case models.UserUpdate:
		return v.structs.Validate(ctx, value)
	case *models.UserUpdate:
		return v.structs.Validate(ctx, *value)

	case models.LabelInput:
		return v.structs.Validate(ctx, value)
	case *models.LabelInput:
		return v.structs.Validate(ctx, *value)

	case models.LabelUpdate:
		return v.validateLabelUpdate(ctx, value, fields...)
	case *models.LabelUpdate:
		return v.validateLabelUpdate(ctx, *value, fields...)

	case models.RecipeInput:
		return v.validateRecipeInput(ctx, value)
	case *models.RecipeInput:
		return v.validateRecipeInput(ctx, *value)

	case models.RecipeUpdate:
		return v.validateRecipeUpdate(ctx, value, fields...)
	case *models.RecipeUpdate:
		return v.validateRecipeUpdate(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ModelValidator) validateLabelUpdate(ctx context.Context, update models.LabelUpdate, required ...string) error {
	errs, err := collect(v.structs.Validate(ctx, update))
	if err != nil {
		return err
	}

	present := map[string]bool{FieldName: update.Name != nil}
	requirePresent(errs, present, required)

	return errs.OrNil()
}

func (v *ModelValidator) validateRecipeInput(ctx context.Context, input models.RecipeInput) error {
	errs, err := collect(v.structs.Validate(ctx, input))
	if err != nil {
		return err
	}

	if input.Price != nil {
		errs.Merge(checkPrice(*input.Price))
	}

	return errs.OrNil()
}

func (v *ModelValidator) validateRecipeUpdate(ctx context.Context, update models.RecipeUpdate, required ...string) error {
	errs, err := collect(v.structs.Validate(ctx, update))
	if err != nil {
		return err
	}

	present := map[string]bool{
		FieldTitle:       update.Title != nil,
		FieldTimeMinutes: update.TimeMinutes != nil,
		FieldPrice:       update.Price != nil,
	}
	requirePresent(errs, present, required)

	if update.Price != nil {
		errs.Merge(checkPrice(*update.Price))
	}

	return errs.OrNil()
}

// collect turns the result of a struct validation into a mutable
// *ValidationError so more messages can be added. Errors of any other kind
// are passed through.
func collect(err error) (*ValidationError, error) {
	if err == nil {
		return &ValidationError{}, nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, nil
	}

	return nil, err
}

func requirePresent(errs *ValidationError, present map[string]bool, required []string) {
	for _, field := range required {
		if isPresent, known := present[field]; known && !isPresent {
			errs.Add(field, "This field is required.")
		}
	}
}

// checkPrice enforces the NUMERIC(5,2) column: at most two decimal places,
// at most three whole digits, no negative values.
func checkPrice(price decimal.Decimal) *ValidationError {
	errs := &ValidationError{}

	if price.IsNegative() {
		errs.Add(FieldPrice, "Ensure this value is greater than or equal to 0.")
	}
	if !price.Equal(price.Round(priceDecimalPlaces)) {
		errs.Add(FieldPrice, fmt.Sprintf("Ensure that there are no more than %d decimal places.", priceDecimalPlaces))
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		errs.Add(FieldPrice, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", priceWholeDigits))
	}

	return errs
}
