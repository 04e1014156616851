package service

import (
	"errors"
	"fmt"

	"github.com/platelog/internal/db"
	"gorm.io/gorm"
)

// ErrRecipeNotFound 在指定食谱不存在时返回
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService 负责 Recipe 记录的增删改查。
// 食谱总量在创建时固定，之后食物数据变化也不会重算。
type RecipeService struct {
	db    *gorm.DB
	foods *FoodService
}

// RecipeInput 定义创建/更新食谱时的全部字段
type RecipeInput struct {
	Name          string
	Items         []db.RecipeItem
	TotalCalories float64
	TotalFat      float64
	TotalCarbs    float64
	TotalProtein  float64
	IsPinned      bool
}

// NewRecipeService 构造 RecipeService
func NewRecipeService(gdb *gorm.DB, foods *FoodService) *RecipeService {
	return &RecipeService{db: gdb, foods: foods}
}

// List 返回全部食谱，置顶项在前，其余按创建顺序
func (s *RecipeService) List() ([]db.Recipe, error) {
	var recipes []db.Recipe
	if err := s.db.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	sortPinnedFirst(recipes, func(r db.Recipe) bool { return r.IsPinned })
	return recipes, nil
}

// Get 根据 ID 获取食谱
func (s *RecipeService) Get(id uint) (*db.Recipe, error) {
	var recipe db.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &recipe, nil
}

// Create 新建食谱并返回分配的 ID
func (s *RecipeService) Create(input RecipeInput) (uint, error) {
	recipe := db.Recipe{}
	applyRecipeInput(&recipe, input)

	if err := s.db.Create(&recipe).Error; err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}
	return recipe.ID, nil
}

// Compose 根据当前食物数据计算一份的总量并新建食谱，input 中的总量被忽略。
// 找不到的食物不计入总量，但仍保留在条目中。
func (s *RecipeService) Compose(input RecipeInput) (uint, error) {
	totals, err := s.ComputeTotals(input.Items)
	if err != nil {
		return 0, err
	}

	input.TotalCalories = totals.Calories
	input.TotalFat = totals.Fat
	input.TotalCarbs = totals.Carbs
	input.TotalProtein = totals.Protein
	return s.Create(input)
}

// ComputeTotals 按当前食物数据汇总条目的营养总量
func (s *RecipeService) ComputeTotals(items []db.RecipeItem) (NutrientTotals, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.FoodID)
	}

	foods, err := s.foods.byIDs(ids)
	if err != nil {
		return NutrientTotals{}, err
	}

	var totals NutrientTotals
	for _, item := range items {
		food, ok := foods[item.FoodID]
		if !ok {
			continue
		}
		totals.add(scaleFood(food, item.Amount))
	}
	return totals, nil
}

// Update 整体替换指定食谱，包括调用方传入的总量
func (s *RecipeService) Update(id uint, input RecipeInput) (*db.Recipe, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyRecipeInput(existing, input)

	if err := s.db.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return existing, nil
}

// TogglePin 切换置顶状态，食谱不存在时不做任何事
func (s *RecipeService) TogglePin(id uint) error {
	recipe, err := s.Get(id)
	if errors.Is(err, ErrRecipeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.db.Model(recipe).Update("is_pinned", !recipe.IsPinned).Error; err != nil {
		return fmt.Errorf("toggle recipe pin: %w", err)
	}
	return nil
}

// Delete 删除食谱，引用它的记录在汇总时被跳过
func (s *RecipeService) Delete(id uint) error {
	if err := s.db.Delete(&db.Recipe{}, id).Error; err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (s *RecipeService) byIDs(ids []uint) (map[uint]db.Recipe, error) {
	result := make(map[uint]db.Recipe, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var recipes []db.Recipe
	if err := s.db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	for _, recipe := range recipes {
		result[recipe.ID] = recipe
	}
	return result, nil
}

func applyRecipeInput(recipe *db.Recipe, input RecipeInput) {
	items := make([]db.RecipeItem, len(input.Items))
	copy(items, input.Items)

	recipe.Name = input.Name
	recipe.Items = items
	recipe.TotalCalories = input.TotalCalories
	recipe.TotalFat = input.TotalFat
	recipe.TotalCarbs = input.TotalCarbs
	recipe.TotalProtein = input.TotalProtein
	recipe.IsPinned = input.IsPinned
}
