package http

import (
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/shopspring/decimal"
)

// Wire representations. Ids are never accepted from clients, ownership
// comes from the token only.

type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// registerRequest mirrors models.User with the password readable from JSON.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type labelResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type recipeResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       string          `json:"price"`
	Tags        []labelResponse `json:"tags"`
	Ingredients []labelResponse `json:"ingredients"`
}

type recipeDetailResponse struct {
	recipeResponse
	Description string `json:"description"`
	Link        string `json:"link"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{Email: user.Email, Name: user.Name}
}

func toLabelResponse(label models.Label) labelResponse {
	return labelResponse{ID: label.ID, Name: label.Name}
}

func toLabelResponses(labels []models.Label) []labelResponse {
	resp := make([]labelResponse, 0, len(labels))
	for _, l := range labels {
		resp = append(resp, toLabelResponse(l))
	}
	return resp
}

// formatPrice renders a price with exactly two decimal places, e.g. "5.50".
func formatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}

func toRecipeResponse(recipe models.Recipe) recipeResponse {
	return recipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       formatPrice(recipe.Price),
		Tags:        toLabelResponses(recipe.Tags),
		Ingredients: toLabelResponses(recipe.Ingredients),
	}
}

func toRecipeResponses(recipes []models.Recipe) []recipeResponse {
	resp := make([]recipeResponse, 0, len(recipes))
	for _, r := range recipes {
		resp = append(resp, toRecipeResponse(r))
	}
	return resp
}

func toRecipeDetailResponse(recipe models.Recipe) recipeDetailResponse {
	return recipeDetailResponse{
		recipeResponse: toRecipeResponse(recipe),
		Description:    recipe.Description,
		Link:           recipe.Link,
	}
}
