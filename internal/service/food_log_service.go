package service

import (
	"errors"
	"fmt"

	"github.com/platelog/internal/db"
	"gorm.io/gorm"
)

// ErrInvalidLogTarget 在记录既未指定食物也未指定食谱（或同时指定）时返回
var ErrInvalidLogTarget = errors.New("log must reference exactly one food or recipe")

// FoodLogService 负责进食记录的写入、删除与按日查询。
// 记录写入后不可修改，只能删除。
type FoodLogService struct {
	db *gorm.DB
}

// FoodLogInput 定义记录食物时的输入，Amount 以食物的份量单位计
type FoodLogInput struct {
	FoodID     uint
	Date       string
	Amount     float64
	TimeLogged string
	TimeOfDay  MealTime
}

// RecipeLogInput 定义记录食谱时的输入，Amount 为份数
type RecipeLogInput struct {
	RecipeID   uint
	Date       string
	Amount     float64
	TimeLogged string
	TimeOfDay  MealTime
}

// LogEntry 是批量记录中的一项，FoodID 与 RecipeID 只能设置一个
type LogEntry struct {
	FoodID   uint
	RecipeID uint
	Amount   float64
}

// LogBatchInput 描述一次共享日期、时刻与时段的批量记录
type LogBatchInput struct {
	Date       string
	TimeLogged string
	TimeOfDay  MealTime
	Entries    []LogEntry
}

// NewFoodLogService 构造 FoodLogService
func NewFoodLogService(gdb *gorm.DB) *FoodLogService {
	return &FoodLogService{db: gdb}
}

// LogFood 写入一条食物记录并返回其 ID
func (s *FoodLogService) LogFood(input FoodLogInput) (uint, error) {
	if input.FoodID == 0 {
		return 0, ErrInvalidLogTarget
	}

	foodID := input.FoodID
	record := db.FoodLog{
		FoodID:     &foodID,
		Date:       input.Date,
		Amount:     input.Amount,
		TimeLogged: input.TimeLogged,
		TimeOfDay:  string(input.TimeOfDay),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return 0, fmt.Errorf("log food: %w", err)
	}
	return record.ID, nil
}

// LogRecipe 写入一条食谱记录并返回其 ID
func (s *FoodLogService) LogRecipe(input RecipeLogInput) (uint, error) {
	if input.RecipeID == 0 {
		return 0, ErrInvalidLogTarget
	}

	recipeID := input.RecipeID
	record := db.FoodLog{
		RecipeID:   &recipeID,
		Date:       input.Date,
		Amount:     input.Amount,
		TimeLogged: input.TimeLogged,
		TimeOfDay:  string(input.TimeOfDay),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return 0, fmt.Errorf("log recipe: %w", err)
	}
	return record.ID, nil
}

// LogBatch 在一个事务中写入多条记录，任一条目无效则全部不写入
func (s *FoodLogService) LogBatch(input LogBatchInput) ([]uint, error) {
	records := make([]db.FoodLog, 0, len(input.Entries))
	for i, entry := range input.Entries {
		record := db.FoodLog{
			Date:       input.Date,
			Amount:     entry.Amount,
			TimeLogged: input.TimeLogged,
			TimeOfDay:  string(input.TimeOfDay),
		}

		switch {
		case entry.FoodID != 0 && entry.RecipeID == 0:
			foodID := entry.FoodID
			record.FoodID = &foodID
		case entry.RecipeID != 0 && entry.FoodID == 0:
			recipeID := entry.RecipeID
			record.RecipeID = &recipeID
		default:
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidLogTarget, i)
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return []uint{}, nil
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	}); err != nil {
		return nil, fmt.Errorf("log batch: %w", err)
	}

	ids := make([]uint, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids, nil
}

// Delete 删除指定记录，不存在时不做任何事
func (s *FoodLogService) Delete(id uint) error {
	if err := s.db.Delete(&db.FoodLog{}, id).Error; err != nil {
		return fmt.Errorf("delete food log: %w", err)
	}
	return nil
}

// ListByDate 通过日期索引返回当天全部记录，按写入顺序
func (s *FoodLogService) ListByDate(date string) ([]db.FoodLog, error) {
	var logs []db.FoodLog
	if err := s.db.Where("date = ?", date).Order("id ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	return logs, nil
}
