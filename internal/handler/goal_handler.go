package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
)

type goalsPayload struct {
	Calories          *float64 `json:"calories" binding:"required,gte=0"`
	FatPercentage     *float64 `json:"fatPercentage" binding:"required,gte=0,lte=100"`
	CarbsPercentage   *float64 `json:"carbsPercentage" binding:"required,gte=0,lte=100"`
	ProteinPercentage *float64 `json:"proteinPercentage" binding:"required,gte=0,lte=100"`
}

type percentagePayload struct {
	Macro string   `json:"macro" binding:"required,macro"`
	Value *float64 `json:"value" binding:"required"`
}

// 三项占比之和允许的舍入误差
const percentageTolerance = 0.5

// GetGoals 返回每日目标及换算出的克数
func (a *API) GetGoals(c *gin.Context) {
	goals, err := a.store.Goals.Get()
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalsToPayload(goals))
}

// UpdateGoals 整体覆盖每日目标
func (a *API) UpdateGoals(c *gin.Context) {
	var payload goalsPayload
	if !bindJSON(c, &payload, msgInvalidGoals) {
		return
	}

	goals := service.DailyGoals{
		Calories:          *payload.Calories,
		FatPercentage:     *payload.FatPercentage,
		CarbsPercentage:   *payload.CarbsPercentage,
		ProteinPercentage: *payload.ProteinPercentage,
	}
	sum := goals.FatPercentage + goals.CarbsPercentage + goals.ProteinPercentage
	if sum < 100-percentageTolerance || sum > 100+percentageTolerance {
		respondError(c, http.StatusBadRequest, msgPercentageSum)
		return
	}

	if err := a.store.Goals.Update(goals); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalsToPayload(goals))
}

// AdjustMacroPercentage 设定某一营养素占比，其余两项按比例重新分配后保存
func (a *API) AdjustMacroPercentage(c *gin.Context) {
	var payload percentagePayload
	if !bindJSON(c, &payload, msgInvalidGoals) {
		return
	}

	macro, err := service.ParseMacro(payload.Macro)
	if err != nil {
		respondError(c, http.StatusBadRequest, msgUnknownMacro)
		return
	}

	current, err := a.store.Goals.Get()
	if err != nil {
		handleStoreError(c, err)
		return
	}

	updated := service.RescaleMacroPercentages(current, macro, *payload.Value)
	if err := a.store.Goals.Update(updated); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalsToPayload(updated))
}

func goalsToPayload(goals service.DailyGoals) gin.H {
	grams := goals.Grams()
	return gin.H{
		"calories":          goals.Calories,
		"fatPercentage":     goals.FatPercentage,
		"carbsPercentage":   goals.CarbsPercentage,
		"proteinPercentage": goals.ProteinPercentage,
		"grams": gin.H{
			"fat":     grams.Fat,
			"carbs":   grams.Carbs,
			"protein": grams.Protein,
		},
	}
}
