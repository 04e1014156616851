package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoDataFillsEveryDay(t *testing.T) {
	gdb, err := db.Open(filepath.Join(t.TempDir(), "demo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	store := service.NewNutritionStore(gdb)
	end := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	summary, err := generateDemoData(store, end, 7)
	require.NoError(t, err)
	assert.Equal(t, len(demoFoods), summary.Foods)
	assert.Equal(t, 1, summary.Recipes)
	assert.Equal(t, 35, summary.Logs)

	foods, err := store.Foods.List()
	require.NoError(t, err)
	require.Len(t, foods, len(demoFoods)+2)
	assert.Equal(t, "Almonds", foods[0].Name)

	week := store.WeekSummary(end, 7)
	require.Len(t, week, 7)
	for _, day := range week {
		assert.Greater(t, day.Calories, 0.0, day.Date)
	}

	rows, err := store.DayNutrients("2024-05-14")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, service.MealBreakfast, rows[0].TimeOfDay)
	assert.Equal(t, service.MealDinner, rows[4].TimeOfDay)

	goals, err := store.Goals.Get()
	require.NoError(t, err)
	assert.InDelta(t, 2200, goals.Calories, 1e-9)
}

func TestGenerateDemoDataRecreatesDeletedLunchFoods(t *testing.T) {
	gdb, err := db.Open(filepath.Join(t.TempDir(), "demo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	store := service.NewNutritionStore(gdb)
	require.NoError(t, store.Foods.Delete(1))
	require.NoError(t, store.Foods.Delete(2))

	end := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	summary, err := generateDemoData(store, end, 1)
	require.NoError(t, err)
	assert.Equal(t, len(demoFoods)+2, summary.Foods)

	rows, err := store.DayNutrients("2024-05-14")
	require.NoError(t, err)
	require.Len(t, rows, 5)

	var lunchNames []string
	for _, row := range rows {
		if row.TimeOfDay == service.MealLunch {
			lunchNames = append(lunchNames, row.Name)
		}
	}
	assert.Equal(t, []string{"Chicken Breast", "Brown Rice"}, lunchNames)

	logs, err := store.Logs.ListByDate("2024-05-14")
	require.NoError(t, err)
	for _, log := range logs {
		if log.FoodID != nil {
			assert.NotContains(t, []uint{1, 2}, *log.FoodID)
		}
	}
}
