package handler

import (
	"net/http"
	"testing"

	"github.com/platelog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFoodStampsTimeAndMeal(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{"foodId": 1, "date": "2024-05-01", "amount": 150}
	w := performJSON(t, api.LogFood, http.MethodPost, "/api/logs/food", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	logs, err := store.Logs.ListByDate("2024-05-01")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "12:30:00", logs[0].TimeLogged)
	assert.Equal(t, string(service.DefaultMealTime(fixedNow.Hour())), logs[0].TimeOfDay)
	require.NotNil(t, logs[0].FoodID)
	assert.Equal(t, uint(1), *logs[0].FoodID)
	assert.Nil(t, logs[0].RecipeID)
}

func TestLogFoodKeepsProvidedMeal(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{
		"foodId":     2,
		"date":       "2024-05-01",
		"amount":     200,
		"timeLogged": "07:15:00",
		"timeOfDay":  "breakfast",
	}
	w := performJSON(t, api.LogFood, http.MethodPost, "/api/logs/food", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	logs, err := store.Logs.ListByDate("2024-05-01")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "07:15:00", logs[0].TimeLogged)
	assert.Equal(t, "breakfast", logs[0].TimeOfDay)
}

func TestLogFoodRejectsInvalidPayload(t *testing.T) {
	api, _ := setupTestAPI(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "bad date", payload: map[string]any{"foodId": 1, "date": "05/01/2024", "amount": 100}},
		{name: "zero amount", payload: map[string]any{"foodId": 1, "date": "2024-05-01", "amount": 0}},
		{name: "missing food", payload: map[string]any{"date": "2024-05-01", "amount": 100}},
		{name: "unknown meal", payload: map[string]any{"foodId": 1, "date": "2024-05-01", "amount": 100, "timeOfDay": "brunch"}},
		{name: "bad time", payload: map[string]any{"foodId": 1, "date": "2024-05-01", "amount": 100, "timeLogged": "7pm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, api.LogFood, http.MethodPost, "/api/logs/food", tt.payload, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogRecipe(t *testing.T) {
	api, store := setupTestAPI(t)

	recipeID, err := store.Recipes.Create(service.RecipeInput{Name: "Bowl", TotalCalories: 400})
	require.NoError(t, err)

	payload := map[string]any{"recipeId": recipeID, "date": "2024-05-01", "amount": 1.5, "timeOfDay": "dinner"}
	w := performJSON(t, api.LogRecipe, http.MethodPost, "/api/logs/recipe", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	logs, err := store.Logs.ListByDate("2024-05-01")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].IsRecipe())
	assert.InDelta(t, 1.5, logs[0].Amount, 1e-9)
}

func TestLogBatch(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{
		"date":      "2024-05-02",
		"timeOfDay": "lunch",
		"entries": []map[string]any{
			{"foodId": 1, "amount": 120},
			{"foodId": 2, "amount": 80},
		},
	}
	w := performJSON(t, api.LogBatch, http.MethodPost, "/api/logs/batch", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decodeBody(t, w)["ids"].([]any), 2)

	logs, err := store.Logs.ListByDate("2024-05-02")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, log := range logs {
		assert.Equal(t, "lunch", log.TimeOfDay)
		assert.Equal(t, "12:30:00", log.TimeLogged)
	}
}

func TestLogBatchRejectsAmbiguousEntry(t *testing.T) {
	api, store := setupTestAPI(t)

	payload := map[string]any{
		"date": "2024-05-02",
		"entries": []map[string]any{
			{"foodId": 1, "amount": 120},
			{"foodId": 2, "recipeId": 1, "amount": 1},
		},
	}
	w := performJSON(t, api.LogBatch, http.MethodPost, "/api/logs/batch", payload, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	logs, err := store.Logs.ListByDate("2024-05-02")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDeleteLog(t *testing.T) {
	api, store := setupTestAPI(t)

	id, err := store.Logs.LogFood(service.FoodLogInput{FoodID: 1, Date: "2024-05-01", Amount: 100, TimeLogged: "08:00:00", TimeOfDay: service.MealBreakfast})
	require.NoError(t, err)

	w := performJSON(t, api.DeleteLog, http.MethodDelete, "/api/logs", nil, idParam(id))
	require.Equal(t, http.StatusNoContent, w.Code)

	logs, err := store.Logs.ListByDate("2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
