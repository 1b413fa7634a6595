package handler

import (
	"net/http"

	"github.com/skunkedgame/skunkd/internal/crafting"
	"github.com/skunkedgame/skunkd/internal/domain"
)

// RecipeListResponse carries the full recipe catalog.
type RecipeListResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// HandleListRecipes returns every recipe in the catalog.
func HandleListRecipes(recipes *crafting.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes.Recipes()})
	}
}

// HandleGetRecipe returns one recipe by exact name.
func HandleGetRecipe(recipes *crafting.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, "missing name")
			return
		}

		recipe, ok := recipes.GetRecipeByName(name)
		if !ok {
			respondError(w, http.StatusNotFound, domain.ErrMsgRecipeNotFound)
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}
