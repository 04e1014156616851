package db

import "gorm.io/gorm"

// Food 定义营养参考食物。
// Calories/Fat/Carbs/Protein 均以 ServingSize 个 ServingUnit 为基准。
// 可选微量元素使用指针，nil 表示未知。
type Food struct {
	gorm.Model
	Name        string `gorm:"index;not null"`
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
	IsPinned    bool `gorm:"not null;default:false"`
}

// TableName 固定表名，避免迁移步骤依赖命名策略。
func (Food) TableName() string {
	return "foods"
}
