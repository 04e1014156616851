package service

import (
	"errors"
	"fmt"

	"github.com/platelog/internal/db"
	"gorm.io/gorm"
)

// ErrFoodNotFound 在指定食物不存在时返回
var ErrFoodNotFound = errors.New("food not found")

// FoodService 负责 Food 记录的增删改查。
// 存储层信任调用方已校验的输入，不做额外校验。
type FoodService struct {
	db *gorm.DB
}

// FoodInput 定义创建/更新食物时的全部字段
type FoodInput struct {
	Name        string
	Calories    float64
	Fat         float64
	Carbs       float64
	Protein     float64
	ServingSize float64
	ServingUnit string
	Cholesterol *float64
	Sodium      *float64
	Potassium   *float64
	IsCustom    bool
	IsPinned    bool
}

// NewFoodService 构造 FoodService
func NewFoodService(gdb *gorm.DB) *FoodService {
	return &FoodService{db: gdb}
}

// List 返回全部食物，置顶项在前，其余按创建顺序
func (s *FoodService) List() ([]db.Food, error) {
	var foods []db.Food
	if err := s.db.Order("id ASC").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	sortPinnedFirst(foods, func(f db.Food) bool { return f.IsPinned })
	return foods, nil
}

// Get 根据 ID 获取食物
func (s *FoodService) Get(id uint) (*db.Food, error) {
	var food db.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &food, nil
}

// Create 新建食物并返回分配的 ID
func (s *FoodService) Create(input FoodInput) (uint, error) {
	food := db.Food{}
	applyFoodInput(&food, input)

	if err := s.db.Create(&food).Error; err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}
	return food.ID, nil
}

// Update 整体替换指定食物
func (s *FoodService) Update(id uint, input FoodInput) (*db.Food, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyFoodInput(existing, input)

	if err := s.db.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}
	return existing, nil
}

// TogglePin 切换置顶状态，食物不存在时不做任何事
func (s *FoodService) TogglePin(id uint) error {
	food, err := s.Get(id)
	if errors.Is(err, ErrFoodNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.db.Model(food).Update("is_pinned", !food.IsPinned).Error; err != nil {
		return fmt.Errorf("toggle food pin: %w", err)
	}
	return nil
}

// Delete 删除食物。引用它的记录与食谱不会级联删除，汇总时直接跳过。
func (s *FoodService) Delete(id uint) error {
	if err := s.db.Delete(&db.Food{}, id).Error; err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	return nil
}

// byIDs 返回指定 ID 中仍存在的食物，按 ID 索引
func (s *FoodService) byIDs(ids []uint) (map[uint]db.Food, error) {
	result := make(map[uint]db.Food, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var foods []db.Food
	if err := s.db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	for _, food := range foods {
		result[food.ID] = food
	}
	return result, nil
}

func applyFoodInput(food *db.Food, input FoodInput) {
	food.Name = input.Name
	food.Calories = input.Calories
	food.Fat = input.Fat
	food.Carbs = input.Carbs
	food.Protein = input.Protein
	food.ServingSize = input.ServingSize
	food.ServingUnit = input.ServingUnit
	food.Cholesterol = input.Cholesterol
	food.Sodium = input.Sodium
	food.Potassium = input.Potassium
	food.IsCustom = input.IsCustom
	food.IsPinned = input.IsPinned
}
