package db

import "gorm.io/gorm"

// FoodLog 记录一次进食。FoodID 与 RecipeID 有且仅有一个非空。
// Date 为 2006-01-02 格式的日历日，建有索引以便按天查询；
// TimeLogged 为 15:04:05 格式的记录时刻，与日期无关。
type FoodLog struct {
	gorm.Model
	FoodID     *uint
	RecipeID   *uint
	Date       string `gorm:"index;not null"`
	Amount     float64
	TimeLogged string
	TimeOfDay  string `gorm:"size:16"`
}

// TableName 固定表名。
func (FoodLog) TableName() string {
	return "food_logs"
}

// IsRecipe 判断该记录是否引用食谱。
func (l FoodLog) IsRecipe() bool {
	return l.RecipeID != nil
}
