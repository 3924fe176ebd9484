package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is a recipe owned by a single user together with its tag and
// ingredient associations.
type Recipe struct {
	ID          int64
	UserID      int64
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Description string
	Link        string

	Tags        []Tag
	Ingredients []Ingredient

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeInput is the payload used to create a recipe. Tags and ingredients
// are referenced by name and resolved with get-or-create for the owner.
type RecipeInput struct {
	Title       string           `json:"title" validate:"required,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"required,gte=0,lte=2147483647"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description string           `json:"description"`
	Link        string           `json:"link" validate:"max=255"`
	Tags        []LabelInput     `json:"tags" validate:"dive"`
	Ingredients []LabelInput     `json:"ingredients" validate:"dive"`
}

// RecipeUpdate describes an update of a recipe. Nil fields are left
// unchanged. A non-nil Tags or Ingredients slice (even an empty one) replaces
// the whole association set.
type RecipeUpdate struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitempty,gte=0,lte=2147483647"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link" validate:"omitempty,max=255"`
	Tags        *[]LabelInput    `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]LabelInput    `json:"ingredients" validate:"omitempty,dive"`
}
