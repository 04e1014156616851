package service

import (
	"log/slog"
	"slices"
	"time"

	"github.com/platelog/internal/db"
	"gorm.io/gorm"
)

// DefaultSummaryDays 是周视图默认覆盖的天数
const DefaultSummaryDays = 7

// NutritionStore 汇集四类记录的存储，并提供按日、按周的营养汇总。
// 进程启动时构造一次，注入给所有调用方。
type NutritionStore struct {
	Foods   *FoodService
	Recipes *RecipeService
	Logs    *FoodLogService
	Goals   *DailyGoalService

	logger *slog.Logger
}

// NutrientTotals 是热量与三大营养素的合计
type NutrientTotals struct {
	Calories float64
	Fat      float64
	Carbs    float64
	Protein  float64
}

func (t *NutrientTotals) add(other NutrientTotals) {
	t.Calories += other.Calories
	t.Fat += other.Fat
	t.Carbs += other.Carbs
	t.Protein += other.Protein
}

// NutrientRow 是一条已解析的进食记录，营养值已按摄入量换算
type NutrientRow struct {
	ID uint
	NutrientTotals
	Name       string
	Amount     float64
	TimeLogged string
	TimeOfDay  MealTime
	IsRecipe   bool
}

// DaySummary 是某一天的营养合计
type DaySummary struct {
	Date string
	NutrientTotals
}

// NewNutritionStore 基于已迁移的数据库构造存储
func NewNutritionStore(gdb *gorm.DB) *NutritionStore {
	foods := NewFoodService(gdb)
	return &NutritionStore{
		Foods:   foods,
		Recipes: NewRecipeService(gdb, foods),
		Logs:    NewFoodLogService(gdb),
		Goals:   NewDailyGoalService(gdb),
		logger:  slog.Default(),
	}
}

// SetLogger 替换汇总过程中使用的日志记录器
func (s *NutritionStore) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// DayNutrients 返回指定日期的已解析记录。
// 记录按当前的食物/食谱数据换算；引用已不存在的记录被静默丢弃。
// 结果按用餐时段排序，同一时段内保持写入顺序。
func (s *NutritionStore) DayNutrients(date string) ([]NutrientRow, error) {
	logs, err := s.Logs.ListByDate(date)
	if err != nil {
		return nil, err
	}

	var foodIDs, recipeIDs []uint
	for _, log := range logs {
		switch {
		case log.IsRecipe():
			recipeIDs = append(recipeIDs, *log.RecipeID)
		case log.FoodID != nil:
			foodIDs = append(foodIDs, *log.FoodID)
		}
	}

	foods, err := s.Foods.byIDs(foodIDs)
	if err != nil {
		return nil, err
	}
	recipes, err := s.Recipes.byIDs(recipeIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]NutrientRow, 0, len(logs))
	for _, log := range logs {
		row, ok := resolveLog(log, foods, recipes)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b NutrientRow) int {
		return a.TimeOfDay.rank() - b.TimeOfDay.rank()
	})

	return rows, nil
}

// DayTotals 汇总指定日期的全部已解析记录
func (s *NutritionStore) DayTotals(date string) (NutrientTotals, error) {
	rows, err := s.DayNutrients(date)
	if err != nil {
		return NutrientTotals{}, err
	}
	return SumRows(rows), nil
}

// WeekSummary 返回截至 end（含）的 days 天每日合计，按日期升序。
// 某一天读取失败时记录日志并以 0 填充，不影响其余日期。
func (s *NutritionStore) WeekSummary(end time.Time, days int) []DaySummary {
	if days <= 0 {
		days = DefaultSummaryDays
	}

	summaries := make([]DaySummary, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := end.AddDate(0, 0, -offset).Format(DateLayout)

		totals, err := s.DayTotals(date)
		if err != nil {
			s.logger.Error("load day totals failed", slog.String("date", date), slog.String("error", err.Error()))
			totals = NutrientTotals{}
		}
		summaries = append(summaries, DaySummary{Date: date, NutrientTotals: totals})
	}
	return summaries
}

// SumRows 合计多条已解析记录
func SumRows(rows []NutrientRow) NutrientTotals {
	var totals NutrientTotals
	for _, row := range rows {
		totals.add(row.NutrientTotals)
	}
	return totals
}

// resolveLog 按 resolve-or-skip 策略解析记录：引用无法解析时返回 false，调用方直接跳过。
func resolveLog(log db.FoodLog, foods map[uint]db.Food, recipes map[uint]db.Recipe) (NutrientRow, bool) {
	row := NutrientRow{
		ID:         log.ID,
		Amount:     log.Amount,
		TimeLogged: log.TimeLogged,
		TimeOfDay:  MealTime(log.TimeOfDay),
	}

	switch {
	case log.IsRecipe():
		recipe, ok := recipes[*log.RecipeID]
		if !ok {
			return NutrientRow{}, false
		}
		row.Name = recipe.Name
		row.IsRecipe = true
		row.NutrientTotals = scaleRecipe(recipe, log.Amount)
	case log.FoodID != nil:
		food, ok := foods[*log.FoodID]
		if !ok {
			return NutrientRow{}, false
		}
		row.Name = food.Name
		row.NutrientTotals = scaleFood(food, log.Amount)
	default:
		return NutrientRow{}, false
	}

	return row, true
}

// scaleFood 按 amount / servingSize 换算食物营养值，amount 以食物的份量单位计
func scaleFood(food db.Food, amount float64) NutrientTotals {
	multiplier := amount / food.ServingSize
	return NutrientTotals{
		Calories: food.Calories * multiplier,
		Fat:      food.Fat * multiplier,
		Carbs:    food.Carbs * multiplier,
		Protein:  food.Protein * multiplier,
	}
}

// scaleRecipe 按份数换算食谱总量
func scaleRecipe(recipe db.Recipe, servings float64) NutrientTotals {
	return NutrientTotals{
		Calories: recipe.TotalCalories * servings,
		Fat:      recipe.TotalFat * servings,
		Carbs:    recipe.TotalCarbs * servings,
		Protein:  recipe.TotalProtein * servings,
	}
}
