package service

import (
	"errors"
	"fmt"
	"strings"
)

// MealTime 表示一天中的用餐时段。
type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealAMSnack   MealTime = "amSnack"
	MealLunch     MealTime = "lunch"
	MealPMSnack   MealTime = "pmSnack"
	MealDinner    MealTime = "dinner"
	MealLateSnack MealTime = "lateSnack"
)

const (
	// DateLayout 是记录日期的格式。
	DateLayout = "2006-01-02"
	// TimeLoggedLayout 是记录时刻的格式，与日期无关。
	TimeLoggedLayout = "15:04:05"
)

// ErrInvalidMealTime 在时段不是六个固定值之一时返回
var ErrInvalidMealTime = errors.New("invalid meal time")

// MealTimes 按一天中的先后顺序列出全部时段。
var MealTimes = []MealTime{
	MealBreakfast,
	MealAMSnack,
	MealLunch,
	MealPMSnack,
	MealDinner,
	MealLateSnack,
}

// Valid 判断是否为已知时段。
func (m MealTime) Valid() bool {
	return m.rank() < len(MealTimes)
}

// rank 返回时段序号，未知时段排在最后。
func (m MealTime) rank() int {
	for i, known := range MealTimes {
		if m == known {
			return i
		}
	}
	return len(MealTimes)
}

// ParseMealTime 解析时段名称，大小写不敏感。
func ParseMealTime(raw string) (MealTime, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range MealTimes {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMealTime, raw)
}

// DefaultMealTime 根据当前小时推断默认时段。
func DefaultMealTime(hour int) MealTime {
	switch {
	case hour < 10:
		return MealBreakfast
	case hour < 11:
		return MealAMSnack
	case hour < 14:
		return MealLunch
	case hour < 17:
		return MealPMSnack
	case hour < 21:
		return MealDinner
	default:
		return MealLateSnack
	}
}
