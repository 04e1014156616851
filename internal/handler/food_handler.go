package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
)

type foodPayload struct {
	Name        string   `json:"name" binding:"required"`
	Calories    *float64 `json:"calories" binding:"required,gte=0"`
	Fat         *float64 `json:"fat" binding:"required,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"required,gte=0"`
	Protein     *float64 `json:"protein" binding:"required,gte=0"`
	ServingSize float64  `json:"servingSize" binding:"required,gt=0"`
	ServingUnit string   `json:"servingUnit" binding:"required"`
	Cholesterol *float64 `json:"cholesterol" binding:"omitempty,gte=0"`
	Sodium      *float64 `json:"sodium" binding:"omitempty,gte=0"`
	Potassium   *float64 `json:"potassium" binding:"omitempty,gte=0"`
	IsCustom    *bool    `json:"isCustom"`
	IsPinned    bool     `json:"isPinned"`
}

// ListFoods 返回置顶在前的食物列表
func (a *API) ListFoods(c *gin.Context) {
	foods, err := a.store.Foods.List()
	if err != nil {
		handleStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(foods))
	for _, food := range foods {
		items = append(items, foodToPayload(food))
	}
	c.JSON(http.StatusOK, gin.H{"foods": items})
}

// CreateFood 新建自定义食物
func (a *API) CreateFood(c *gin.Context) {
	input, _, ok := a.parseFoodInput(c)
	if !ok {
		return
	}

	id, err := a.store.Foods.Create(input)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateFood 整体替换食物；未提供 isCustom 时沿用已保存的值
func (a *API) UpdateFood(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidFoodID)
		return
	}

	input, customSet, ok := a.parseFoodInput(c)
	if !ok {
		return
	}

	if !customSet {
		existing, err := a.store.Foods.Get(id)
		if err != nil {
			handleStoreError(c, err)
			return
		}
		input.IsCustom = existing.IsCustom
	}

	food, err := a.store.Foods.Update(id, input)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": foodToPayload(*food)})
}

// ToggleFoodPin 切换食物置顶
func (a *API) ToggleFoodPin(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidFoodID)
		return
	}

	if err := a.store.Foods.TogglePin(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteFood 删除食物
func (a *API) DeleteFood(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidFoodID)
		return
	}

	if err := a.store.Foods.Delete(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseFoodInput 绑定并清洗请求体；customSet 表示请求是否显式提供了 isCustom，未提供时按自定义食物处理
func (a *API) parseFoodInput(c *gin.Context) (input service.FoodInput, customSet bool, ok bool) {
	var payload foodPayload
	if !bindJSON(c, &payload, msgInvalidFood) {
		return service.FoodInput{}, false, false
	}

	name := a.cleanName(payload.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, msgEmptyFoodName)
		return service.FoodInput{}, false, false
	}

	isCustom := true
	if payload.IsCustom != nil {
		isCustom = *payload.IsCustom
	}

	return service.FoodInput{
		Name:        name,
		Calories:    *payload.Calories,
		Fat:         *payload.Fat,
		Carbs:       *payload.Carbs,
		Protein:     *payload.Protein,
		ServingSize: payload.ServingSize,
		ServingUnit: a.cleanName(payload.ServingUnit),
		Cholesterol: payload.Cholesterol,
		Sodium:      payload.Sodium,
		Potassium:   payload.Potassium,
		IsCustom:    isCustom,
		IsPinned:    payload.IsPinned,
	}, payload.IsCustom != nil, true
}

func foodToPayload(food db.Food) gin.H {
	return gin.H{
		"id":          food.ID,
		"name":        food.Name,
		"calories":    food.Calories,
		"fat":         food.Fat,
		"carbs":       food.Carbs,
		"protein":     food.Protein,
		"servingSize": food.ServingSize,
		"servingUnit": food.ServingUnit,
		"cholesterol": food.Cholesterol,
		"sodium":      food.Sodium,
		"potassium":   food.Potassium,
		"isCustom":    food.IsCustom,
		"isPinned":    food.IsPinned,
	}
}
