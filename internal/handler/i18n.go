package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/locale"
	"github.com/platelog/internal/service"
)

type message = locale.Text

// localize 按请求语言选择文案
func localize(c *gin.Context, text message) string {
	return text.In(requestLocale(c).Language)
}

var (
	msgInvalidFoodID    = message{Zh: "无效的食物ID", En: "invalid food id"}
	msgInvalidRecipeID  = message{Zh: "无效的食谱ID", En: "invalid recipe id"}
	msgInvalidLogID     = message{Zh: "无效的记录ID", En: "invalid log id"}
	msgInvalidFood      = message{Zh: "食物数据格式错误", En: "invalid food payload"}
	msgInvalidRecipe    = message{Zh: "食谱数据格式错误", En: "invalid recipe payload"}
	msgInvalidLog       = message{Zh: "记录数据格式错误", En: "invalid log payload"}
	msgInvalidGoals     = message{Zh: "目标数据格式错误", En: "invalid goals payload"}
	msgEmptyFoodName    = message{Zh: "食物名称不能为空", En: "food name is required"}
	msgEmptyRecipeName  = message{Zh: "食谱名称不能为空", En: "recipe name is required"}
	msgEmptyRecipe      = message{Zh: "食谱至少需要一个条目", En: "recipe needs at least one item"}
	msgInvalidDate      = message{Zh: "日期格式应为 YYYY-MM-DD", En: "date must be YYYY-MM-DD"}
	msgInvalidDays      = message{Zh: "无效的天数", En: "invalid days"}
	msgPercentageSum    = message{Zh: "三大营养素占比之和必须为 100", En: "macro percentages must add up to 100"}
	msgUnknownMacro     = message{Zh: "未知的营养素", En: "unknown macro nutrient"}
	msgFoodNotFound     = message{Zh: "食物不存在", En: "food not found"}
	msgRecipeNotFound   = message{Zh: "食谱不存在", En: "recipe not found"}
	msgInvalidLogTarget = message{Zh: "记录必须且只能引用一个食物或食谱", En: "log must reference exactly one food or recipe"}
	msgInternalError    = message{Zh: "服务器内部错误", En: "internal server error"}
)

var mealLabels = map[service.MealTime]message{
	service.MealBreakfast: {Zh: "早餐", En: "Breakfast"},
	service.MealAMSnack:   {Zh: "上午加餐", En: "AM Snack"},
	service.MealLunch:     {Zh: "午餐", En: "Lunch"},
	service.MealPMSnack:   {Zh: "下午加餐", En: "PM Snack"},
	service.MealDinner:    {Zh: "晚餐", En: "Dinner"},
	service.MealLateSnack: {Zh: "夜宵", En: "Late Snack"},
}

// localizeMealTime 返回时段的显示名称，未知时段原样返回
func localizeMealTime(c *gin.Context, meal service.MealTime) string {
	if label, ok := mealLabels[meal]; ok {
		return localize(c, label)
	}
	return string(meal)
}
