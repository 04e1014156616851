package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDayReturnsRowsAndTotals(t *testing.T) {
	api, store := setupTestAPI(t)

	_, err := store.Logs.LogFood(service.FoodLogInput{FoodID: 2, Date: "2024-05-01", Amount: 100, TimeLogged: "19:00:00", TimeOfDay: service.MealDinner})
	require.NoError(t, err)
	_, err = store.Logs.LogFood(service.FoodLogInput{FoodID: 1, Date: "2024-05-01", Amount: 150, TimeLogged: "08:00:00", TimeOfDay: service.MealBreakfast})
	require.NoError(t, err)

	params := gin.Params{gin.Param{Key: "date", Value: "2024-05-01"}}
	w := performJSON(t, api.GetDay, http.MethodGet, "/api/days/2024-05-01", nil, params)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	rows := body["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "Chicken Breast", rows[0].(map[string]any)["name"])
	assert.Equal(t, "breakfast", rows[0].(map[string]any)["timeOfDay"])
	assert.InDelta(t, 247.5, rows[0].(map[string]any)["calories"].(float64), 1e-9)
	assert.Equal(t, "Brown Rice", rows[1].(map[string]any)["name"])

	totals := body["totals"].(map[string]any)
	assert.InDelta(t, 247.5+112, totals["calories"].(float64), 1e-9)
}

func TestGetDayRejectsBadDate(t *testing.T) {
	api, _ := setupTestAPI(t)

	params := gin.Params{gin.Param{Key: "date", Value: "2024-13-40"}}
	w := performJSON(t, api.GetDay, http.MethodGet, "/api/days/2024-13-40", nil, params)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWeekDefaultsAndClamps(t *testing.T) {
	api, store := setupTestAPI(t)

	_, err := store.Logs.LogFood(service.FoodLogInput{FoodID: 1, Date: "2024-05-05", Amount: 100, TimeLogged: "12:00:00", TimeOfDay: service.MealLunch})
	require.NoError(t, err)

	params := gin.Params{gin.Param{Key: "end", Value: "2024-05-07"}}
	w := performJSON(t, api.GetWeek, http.MethodGet, "/api/weeks/2024-05-07", nil, params)
	require.Equal(t, http.StatusOK, w.Code)

	days := decodeBody(t, w)["days"].([]any)
	require.Len(t, days, service.DefaultSummaryDays)
	assert.Equal(t, "2024-05-01", days[0].(map[string]any)["date"])
	assert.Equal(t, "2024-05-07", days[6].(map[string]any)["date"])
	assert.InDelta(t, 165, days[4].(map[string]any)["calories"].(float64), 1e-9)
	assert.Zero(t, days[5].(map[string]any)["calories"].(float64))

	w = performJSON(t, api.GetWeek, http.MethodGet, "/api/weeks/2024-05-07?days=400", nil, params)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["days"].([]any), maxSummaryDays)

	w = performJSON(t, api.GetWeek, http.MethodGet, "/api/weeks/2024-05-07?days=abc", nil, params)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
