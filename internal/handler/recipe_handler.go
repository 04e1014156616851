package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
)

type recipeItemPayload struct {
	FoodID uint    `json:"foodId" binding:"required"`
	Amount float64 `json:"amount" binding:"gt=0"`
}

// recipePayload 未提供总量时按当前食物数据计算
type recipePayload struct {
	Name          string              `json:"name" binding:"required"`
	Items         []recipeItemPayload `json:"items" binding:"dive"`
	TotalCalories *float64            `json:"totalCalories" binding:"omitempty,gte=0"`
	TotalFat      *float64            `json:"totalFat" binding:"omitempty,gte=0"`
	TotalCarbs    *float64            `json:"totalCarbs" binding:"omitempty,gte=0"`
	TotalProtein  *float64            `json:"totalProtein" binding:"omitempty,gte=0"`
	IsPinned      bool                `json:"isPinned"`
}

func (p recipePayload) hasTotals() bool {
	return p.TotalCalories != nil || p.TotalFat != nil || p.TotalCarbs != nil || p.TotalProtein != nil
}

func (p recipePayload) recipeItems() []db.RecipeItem {
	items := make([]db.RecipeItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, db.RecipeItem{FoodID: item.FoodID, Amount: item.Amount})
	}
	return items
}

// ListRecipes 返回置顶在前的食谱列表
func (a *API) ListRecipes(c *gin.Context) {
	recipes, err := a.store.Recipes.List()
	if err != nil {
		handleStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, recipeToPayload(recipe))
	}
	c.JSON(http.StatusOK, gin.H{"recipes": items})
}

// CreateRecipe 新建食谱；未提供总量时由条目计算
func (a *API) CreateRecipe(c *gin.Context) {
	var payload recipePayload
	if !bindJSON(c, &payload, msgInvalidRecipe) {
		return
	}

	name := a.cleanName(payload.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, msgEmptyRecipeName)
		return
	}

	var (
		id  uint
		err error
	)
	if payload.hasTotals() {
		id, err = a.store.Recipes.Create(service.RecipeInput{
			Name:          name,
			Items:         payload.recipeItems(),
			TotalCalories: valueOrZero(payload.TotalCalories),
			TotalFat:      valueOrZero(payload.TotalFat),
			TotalCarbs:    valueOrZero(payload.TotalCarbs),
			TotalProtein:  valueOrZero(payload.TotalProtein),
			IsPinned:      payload.IsPinned,
		})
	} else {
		if len(payload.Items) == 0 {
			respondError(c, http.StatusBadRequest, msgEmptyRecipe)
			return
		}
		id, err = a.store.Recipes.Compose(service.RecipeInput{
			Name:     name,
			Items:    payload.recipeItems(),
			IsPinned: payload.IsPinned,
		})
	}
	if err != nil {
		handleStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateRecipe 整体替换食谱；未提供的总量沿用已保存的值
func (a *API) UpdateRecipe(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRecipeID)
		return
	}

	var payload recipePayload
	if !bindJSON(c, &payload, msgInvalidRecipe) {
		return
	}

	name := a.cleanName(payload.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, msgEmptyRecipeName)
		return
	}

	existing, err := a.store.Recipes.Get(id)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	recipe, err := a.store.Recipes.Update(id, service.RecipeInput{
		Name:          name,
		Items:         payload.recipeItems(),
		TotalCalories: valueOr(payload.TotalCalories, existing.TotalCalories),
		TotalFat:      valueOr(payload.TotalFat, existing.TotalFat),
		TotalCarbs:    valueOr(payload.TotalCarbs, existing.TotalCarbs),
		TotalProtein:  valueOr(payload.TotalProtein, existing.TotalProtein),
		IsPinned:      payload.IsPinned,
	})
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipeToPayload(*recipe)})
}

// ToggleRecipePin 切换食谱置顶
func (a *API) ToggleRecipePin(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRecipeID)
		return
	}

	if err := a.store.Recipes.TogglePin(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRecipe 删除食谱
func (a *API) DeleteRecipe(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRecipeID)
		return
	}

	if err := a.store.Recipes.Delete(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func recipeToPayload(recipe db.Recipe) gin.H {
	items := make([]gin.H, 0, len(recipe.Items))
	for _, item := range recipe.Items {
		items = append(items, gin.H{"foodId": item.FoodID, "amount": item.Amount})
	}

	return gin.H{
		"id":            recipe.ID,
		"name":          recipe.Name,
		"items":         items,
		"totalCalories": recipe.TotalCalories,
		"totalFat":      recipe.TotalFat,
		"totalCarbs":    recipe.TotalCarbs,
		"totalProtein":  recipe.TotalProtein,
		"isPinned":      recipe.IsPinned,
	}
}

func valueOrZero(v *float64) float64 {
	return valueOr(v, 0)
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
