package handler

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/platelog/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store     *service.NutritionStore
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewAPI constructs a handler set around the nutrition store.
func NewAPI(store *service.NutritionStore) *API {
	registerValidators()

	return &API{
		store:     store,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// SetClock 替换获取当前时间的函数，主要面向测试场景。
func (a *API) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	a.now = now
}

// cleanName 去除名称中的 HTML 标签与首尾空白，保留普通字符（如 &）。
func (a *API) cleanName(raw string) string {
	return strings.TrimSpace(html.UnescapeString(a.sanitizer.Sanitize(raw)))
}

// stampTime 返回调用方未提供记录时刻时使用的 UTC 时刻。
func (a *API) stampTime(timeLogged string) string {
	if trimmed := strings.TrimSpace(timeLogged); trimmed != "" {
		return trimmed
	}
	return a.now().UTC().Format(service.TimeLoggedLayout)
}

// mealTimeOrDefault 在未指定时段时按当前小时推断。
func (a *API) mealTimeOrDefault(raw string) service.MealTime {
	if meal, err := service.ParseMealTime(raw); err == nil {
		return meal
	}
	return service.DefaultMealTime(a.now().Hour())
}
