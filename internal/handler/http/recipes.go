package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// listRecipes answers with the short representation.
func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	recipes, err := h.services.RecipeService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toRecipeResponses(recipes), http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var input models.RecipeInput
	if !decodeBody(w, r, &input) {
		return
	}

	recipe, err := h.services.RecipeService.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("recipe_id", recipe.ID).Msg("recipe created")
	utils.WriteJSON(w, toRecipeDetailResponse(recipe), http.StatusCreated)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	userID, recipeID, ok := requireUserAndID(w, r)
	if !ok {
		return
	}

	recipe, err := h.services.RecipeService.Get(r.Context(), userID, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toRecipeDetailResponse(recipe), http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	h.applyRecipeUpdate(w, r, false)
}

func (h *Handler) partialUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	h.applyRecipeUpdate(w, r, true)
}

func (h *Handler) applyRecipeUpdate(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, recipeID, ok := requireUserAndID(w, r)
	if !ok {
		return
	}

	var update models.RecipeUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	recipe, err := h.services.RecipeService.Update(r.Context(), userID, recipeID, update, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toRecipeDetailResponse(recipe), http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, recipeID, ok := requireUserAndID(w, r)
	if !ok {
		return
	}

	if err := h.services.RecipeService.Delete(r.Context(), userID, recipeID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
