package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
)

type foodLogPayload struct {
	FoodID     uint    `json:"foodId" binding:"required"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount     float64 `json:"amount" binding:"gt=0"`
	TimeLogged string  `json:"timeLogged" binding:"omitempty,datetime=15:04:05"`
	TimeOfDay  string  `json:"timeOfDay" binding:"omitempty,mealtime"`
}

type recipeLogPayload struct {
	RecipeID   uint    `json:"recipeId" binding:"required"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount     float64 `json:"amount" binding:"gt=0"`
	TimeLogged string  `json:"timeLogged" binding:"omitempty,datetime=15:04:05"`
	TimeOfDay  string  `json:"timeOfDay" binding:"omitempty,mealtime"`
}

type logEntryPayload struct {
	FoodID   uint    `json:"foodId"`
	RecipeID uint    `json:"recipeId"`
	Amount   float64 `json:"amount" binding:"gt=0"`
}

type logBatchPayload struct {
	Date       string            `json:"date" binding:"required,datetime=2006-01-02"`
	TimeLogged string            `json:"timeLogged" binding:"omitempty,datetime=15:04:05"`
	TimeOfDay  string            `json:"timeOfDay" binding:"omitempty,mealtime"`
	Entries    []logEntryPayload `json:"entries" binding:"required,min=1,dive"`
}

// LogFood 记录一次食物摄入
func (a *API) LogFood(c *gin.Context) {
	var payload foodLogPayload
	if !bindJSON(c, &payload, msgInvalidLog) {
		return
	}

	id, err := a.store.Logs.LogFood(service.FoodLogInput{
		FoodID:     payload.FoodID,
		Date:       payload.Date,
		Amount:     payload.Amount,
		TimeLogged: a.stampTime(payload.TimeLogged),
		TimeOfDay:  a.mealTimeOrDefault(payload.TimeOfDay),
	})
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// LogRecipe 记录一次食谱摄入，amount 为份数
func (a *API) LogRecipe(c *gin.Context) {
	var payload recipeLogPayload
	if !bindJSON(c, &payload, msgInvalidLog) {
		return
	}

	id, err := a.store.Logs.LogRecipe(service.RecipeLogInput{
		RecipeID:   payload.RecipeID,
		Date:       payload.Date,
		Amount:     payload.Amount,
		TimeLogged: a.stampTime(payload.TimeLogged),
		TimeOfDay:  a.mealTimeOrDefault(payload.TimeOfDay),
	})
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// LogBatch 一次写入多条共享日期与时段的记录
func (a *API) LogBatch(c *gin.Context) {
	var payload logBatchPayload
	if !bindJSON(c, &payload, msgInvalidLog) {
		return
	}

	entries := make([]service.LogEntry, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		entries = append(entries, service.LogEntry{
			FoodID:   entry.FoodID,
			RecipeID: entry.RecipeID,
			Amount:   entry.Amount,
		})
	}

	ids, err := a.store.Logs.LogBatch(service.LogBatchInput{
		Date:       payload.Date,
		TimeLogged: a.stampTime(payload.TimeLogged),
		TimeOfDay:  a.mealTimeOrDefault(payload.TimeOfDay),
		Entries:    entries,
	})
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

// DeleteLog 删除一条记录
func (a *API) DeleteLog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidLogID)
		return
	}

	if err := a.store.Logs.Delete(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
