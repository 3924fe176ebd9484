package adapter

import (
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/shopspring/decimal"
)

// HealthStatus is the answer of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// recipeResponse covers both the short and the detailed representation.
// Description and Link stay empty for list items.
type recipeResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       decimal.Decimal     `json:"price"`
	Description string              `json:"description"`
	Link        string              `json:"link"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

func (r recipeResponse) toModel() models.Recipe {
	return models.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Description: r.Description,
		Link:        r.Link,
		Tags:        r.Tags,
		Ingredients: r.Ingredients,
	}
}
