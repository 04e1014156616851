package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
)

const maxSummaryDays = 31

// GetDay 返回某日已解析的记录及合计
func (a *API) GetDay(c *gin.Context) {
	day, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidDate)
		return
	}
	date := day.Format(service.DateLayout)

	rows, err := a.store.DayNutrients(date)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		items = append(items, gin.H{
			"id":         row.ID,
			"name":       row.Name,
			"amount":     row.Amount,
			"timeLogged": row.TimeLogged,
			"timeOfDay":  row.TimeOfDay,
			"mealLabel":  localizeMealTime(c, row.TimeOfDay),
			"isRecipe":   row.IsRecipe,
			"calories":   row.Calories,
			"fat":        row.Fat,
			"carbs":      row.Carbs,
			"protein":    row.Protein,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   date,
		"rows":   items,
		"totals": totalsToPayload(service.SumRows(rows)),
	})
}

// GetWeek 返回截至 end 的逐日合计，days 默认 7，最多 31
func (a *API) GetWeek(c *gin.Context) {
	end, err := parseDateParam(c, "end")
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidDate)
		return
	}

	days := service.DefaultSummaryDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, msgInvalidDays)
			return
		}
		days = min(max(parsed, 1), maxSummaryDays)
	}

	summaries := a.store.WeekSummary(end, days)
	items := make([]gin.H, 0, len(summaries))
	for _, summary := range summaries {
		item := totalsToPayload(summary.NutrientTotals)
		item["date"] = summary.Date
		items = append(items, item)
	}
	c.JSON(http.StatusOK, gin.H{"days": items})
}

func totalsToPayload(totals service.NutrientTotals) gin.H {
	return gin.H{
		"calories": totals.Calories,
		"fat":      totals.Fat,
		"carbs":    totals.Carbs,
		"protein":  totals.Protein,
	}
}
