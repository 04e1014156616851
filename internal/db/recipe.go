package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecipeItem 是食谱中的一项，Amount 以对应食物的份量单位计。
type RecipeItem struct {
	FoodID uint    `json:"foodId"`
	Amount float64 `json:"amount"`
}

// Recipe 定义食谱。Total* 为创建时按当时的食物数据计算出的一份总量，之后不随食物变化而重算。
type Recipe struct {
	gorm.Model
	Name          string                          `gorm:"index;not null"`
	Items         datatypes.JSONSlice[RecipeItem] `gorm:"type:text"`
	TotalCalories float64
	TotalFat      float64
	TotalCarbs    float64
	TotalProtein  float64
	IsPinned      bool `gorm:"not null;default:false"`
}

// TableName 固定表名。
func (Recipe) TableName() string {
	return "recipes"
}
