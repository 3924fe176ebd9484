package models

// LabelKind selects one of the two namespaces of named labels a user owns.
type LabelKind string

const (
	// TagLabel is a free-form tag attached to recipes.
	TagLabel LabelKind = "tag"
	// IngredientLabel is an ingredient used by recipes.
	IngredientLabel LabelKind = "ingredient"
)

// Label is a named record owned by a single user. Tags and ingredients share
// this shape and live in separate tables.
type Label struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"-"`
}

// Tag is a label from the tags namespace.
type Tag = Label

// Ingredient is a label from the ingredients namespace.
type Ingredient = Label

// LabelInput is the payload accepted when creating a label or when a label
// is referenced inline inside a recipe.
type LabelInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// LabelUpdate describes a partial label update.
type LabelUpdate struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
}
