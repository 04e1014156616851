package handler

import (
	"net/http"
	"testing"

	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeComposesTotalsFromItems(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{
		"name": "Chicken & rice",
		"items": []map[string]any{
			{"foodId": 1, "amount": 150},
			{"foodId": 2, "amount": 200},
		},
		"isPinned": true,
	}

	w := performJSON(t, api.CreateRecipe, http.MethodPost, "/api/recipes", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	recipe, err := store.Recipes.Get(uint(decodeBody(t, w)["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, "Chicken & rice", recipe.Name)
	assert.InDelta(t, 165*1.5+112*2, recipe.TotalCalories, 1e-9)
	assert.InDelta(t, 3.6*1.5+0.9*2, recipe.TotalFat, 1e-9)
	assert.InDelta(t, 23.5*2, recipe.TotalCarbs, 1e-9)
	assert.InDelta(t, 31*1.5+2.6*2, recipe.TotalProtein, 1e-9)
	assert.True(t, recipe.IsPinned)
	assert.Len(t, recipe.Items, 2)
}

func TestCreateRecipeKeepsExplicitTotals(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{
		"name":          "Smoothie",
		"totalCalories": 300,
		"totalProtein":  20,
	}

	w := performJSON(t, api.CreateRecipe, http.MethodPost, "/api/recipes", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	recipe, err := store.Recipes.Get(uint(decodeBody(t, w)["id"].(float64)))
	require.NoError(t, err)
	assert.InDelta(t, 300, recipe.TotalCalories, 1e-9)
	assert.InDelta(t, 20, recipe.TotalProtein, 1e-9)
	assert.Zero(t, recipe.TotalFat)
	assert.Empty(t, recipe.Items)
}

func TestCreateRecipeWithoutItemsOrTotals(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := performJSON(t, api.CreateRecipe, http.MethodPost, "/api/recipes", map[string]any{"name": "Empty"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipeKeepsOmittedTotals(t *testing.T) {
	api, store := setupTestAPI(t)

	id, err := store.Recipes.Create(service.RecipeInput{
		Name:          "Bowl",
		Items:         []db.RecipeItem{{FoodID: 1, Amount: 100}},
		TotalCalories: 500,
		TotalFat:      10,
		TotalCarbs:    60,
		TotalProtein:  40,
	})
	require.NoError(t, err)

	payload := map[string]any{
		"name":          "Big bowl",
		"items":         []map[string]any{{"foodId": 1, "amount": 200}},
		"totalCalories": 900,
	}
	w := performJSON(t, api.UpdateRecipe, http.MethodPut, "/api/recipes", payload, idParam(id))
	require.Equal(t, http.StatusOK, w.Code)

	recipe, err := store.Recipes.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Big bowl", recipe.Name)
	assert.InDelta(t, 900, recipe.TotalCalories, 1e-9)
	assert.InDelta(t, 10, recipe.TotalFat, 1e-9)
	assert.InDelta(t, 60, recipe.TotalCarbs, 1e-9)
	assert.InDelta(t, 40, recipe.TotalProtein, 1e-9)
	assert.Equal(t, []db.RecipeItem{{FoodID: 1, Amount: 200}}, []db.RecipeItem(recipe.Items))
}

func TestUpdateRecipeMissingReturnsNotFound(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := performJSON(t, api.UpdateRecipe, http.MethodPut, "/api/recipes/42", map[string]any{"name": "Ghost"}, idParam(42))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesAndDelete(t *testing.T) {
	api, store := setupTestAPI(t)

	first, err := store.Recipes.Create(service.RecipeInput{Name: "First", TotalCalories: 100})
	require.NoError(t, err)
	second, err := store.Recipes.Create(service.RecipeInput{Name: "Second", TotalCalories: 200})
	require.NoError(t, err)

	w := performJSON(t, api.ToggleRecipePin, http.MethodPost, "/api/recipes/pin", nil, idParam(second))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(t, api.ListRecipes, http.MethodGet, "/api/recipes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody(t, w)["recipes"].([]any)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Second", recipes[0].(map[string]any)["name"])
	assert.Equal(t, "First", recipes[1].(map[string]any)["name"])

	w = performJSON(t, api.DeleteRecipe, http.MethodDelete, "/api/recipes", nil, idParam(first))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(t, api.ListRecipes, http.MethodGet, "/api/recipes", nil, nil)
	assert.Len(t, decodeBody(t, w)["recipes"].([]any), 1)
}
