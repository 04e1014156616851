package db

import "time"

// DailyGoalKey 是唯一目标记录的主键。
const DailyGoalKey = "current"

// DailyGoal 存储每日营养目标，整个安装只有一行。
type DailyGoal struct {
	Key               string `gorm:"primaryKey;size:32"`
	Calories          float64
	FatPercentage     float64
	CarbsPercentage   float64
	ProteinPercentage float64
	UpdatedAt         time.Time
}

// TableName 固定表名。
func (DailyGoal) TableName() string {
	return "daily_goals"
}
