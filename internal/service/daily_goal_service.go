package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/platelog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyGoals 描述每日热量与三大营养素的能量占比
type DailyGoals struct {
	Calories          float64
	FatPercentage     float64
	CarbsPercentage   float64
	ProteinPercentage float64
}

// DefaultDailyGoals 是尚未保存目标时返回的默认值
var DefaultDailyGoals = DailyGoals{
	Calories:          2000,
	FatPercentage:     20,
	CarbsPercentage:   40,
	ProteinPercentage: 40,
}

// Macro 表示三大营养素之一
type Macro string

const (
	MacroFat     Macro = "fat"
	MacroCarbs   Macro = "carbs"
	MacroProtein Macro = "protein"
)

// ErrInvalidMacro 在营养素名称未知时返回
var ErrInvalidMacro = errors.New("invalid macro nutrient")

const (
	fatCaloriesPerGram     = 9
	carbsCaloriesPerGram   = 4
	proteinCaloriesPerGram = 4
)

// MacroGrams 是按目标换算出的每日克数
type MacroGrams struct {
	Fat     int
	Carbs   int
	Protein int
}

// DailyGoalService 读写唯一的每日目标记录。
// 三项占比之和为 100 由调用方保证，存储层原样保存。
type DailyGoalService struct {
	db *gorm.DB
}

// NewDailyGoalService 构造 DailyGoalService
func NewDailyGoalService(gdb *gorm.DB) *DailyGoalService {
	return &DailyGoalService{db: gdb}
}

// Get 读取每日目标，未设置时返回默认值
func (s *DailyGoalService) Get() (DailyGoals, error) {
	var record db.DailyGoal
	if err := s.db.Where("key = ?", db.DailyGoalKey).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultDailyGoals, nil
		}
		return DailyGoals{}, fmt.Errorf("get daily goals: %w", err)
	}

	return DailyGoals{
		Calories:          record.Calories,
		FatPercentage:     record.FatPercentage,
		CarbsPercentage:   record.CarbsPercentage,
		ProteinPercentage: record.ProteinPercentage,
	}, nil
}

// Update 整体覆盖每日目标
func (s *DailyGoalService) Update(goals DailyGoals) error {
	record := db.DailyGoal{
		Key:               db.DailyGoalKey,
		Calories:          goals.Calories,
		FatPercentage:     goals.FatPercentage,
		CarbsPercentage:   goals.CarbsPercentage,
		ProteinPercentage: goals.ProteinPercentage,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "fat_percentage", "carbs_percentage", "protein_percentage", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("update daily goals: %w", err)
	}
	return nil
}

// ParseMacro 解析营养素名称
func ParseMacro(raw string) (Macro, error) {
	switch Macro(raw) {
	case MacroFat, MacroCarbs, MacroProtein:
		return Macro(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMacro, raw)
}

// RescaleMacroPercentages 将某一营养素占比设为 value（限制在 0~100），
// 另外两项按原有比例分摊剩余部分并保留一位小数。
// 另外两项原本均为 0 时平分剩余部分。
func RescaleMacroPercentages(goals DailyGoals, macro Macro, value float64) DailyGoals {
	if _, err := ParseMacro(string(macro)); err != nil {
		return goals
	}

	value = math.Max(0, math.Min(100, value))
	remaining := 100 - value

	updated := goals
	others := make([]*float64, 0, 2)
	var previous []float64
	for _, m := range []Macro{MacroFat, MacroCarbs, MacroProtein} {
		target := updated.percentage(m)
		if m == macro {
			*target = value
			continue
		}
		others = append(others, target)
		previous = append(previous, *target)
	}

	othersTotal := 0.0
	for _, p := range previous {
		othersTotal += p
	}

	for i, target := range others {
		share := 1 / float64(len(others))
		if othersTotal != 0 {
			share = previous[i] / othersTotal
		}
		*target = roundTo(remaining*share, 1)
	}

	return updated
}

// Grams 按每克热量（脂肪 9、碳水与蛋白质 4）换算每日克数
func (g DailyGoals) Grams() MacroGrams {
	grams := func(pct float64, perGram float64) int {
		return int(math.Round(g.Calories * pct / 100 / perGram))
	}
	return MacroGrams{
		Fat:     grams(g.FatPercentage, fatCaloriesPerGram),
		Carbs:   grams(g.CarbsPercentage, carbsCaloriesPerGram),
		Protein: grams(g.ProteinPercentage, proteinCaloriesPerGram),
	}
}

func (g *DailyGoals) percentage(m Macro) *float64 {
	switch m {
	case MacroFat:
		return &g.FatPercentage
	case MacroCarbs:
		return &g.CarbsPercentage
	default:
		return &g.ProteinPercentage
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
