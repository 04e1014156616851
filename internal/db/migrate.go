package db

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// SchemaVersion 记录已应用的迁移步骤。
type SchemaVersion struct {
	Version   int `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	AppliedAt time.Time
}

// TableName 固定表名。
func (SchemaVersion) TableName() string {
	return "schema_versions"
}

type migrationStep struct {
	Version int
	Name    string
	Apply   func(tx *gorm.DB) error
}

// 迁移只追加，不删除已有数据；新增表或字段时在末尾追加新步骤。
var migrationSteps = []migrationStep{
	{Version: 1, Name: "create foods, food logs and goals", Apply: createInitialSchema},
	{Version: 2, Name: "create recipes", Apply: createRecipes},
}

var migrateMu sync.Mutex

// Migrate 依次执行尚未应用的迁移步骤。每个步骤与其版本标记在同一事务中提交，
// 重复调用是幂等的，种子数据不会重复写入。
func Migrate(gdb *gorm.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	if err := gdb.AutoMigrate(&SchemaVersion{}); err != nil {
		return fmt.Errorf("create schema versions: %w", err)
	}

	current, err := CurrentVersion(gdb)
	if err != nil {
		return err
	}

	for _, step := range migrationSteps {
		if step.Version <= current {
			continue
		}

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := step.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaVersion{
				Version:   step.Version,
				Name:      step.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", step.Version, step.Name, err)
		}
	}

	return nil
}

// CurrentVersion 返回已应用的最高迁移版本，空库为 0。
func CurrentVersion(gdb *gorm.DB) (int, error) {
	var version int
	if err := gdb.Model(&SchemaVersion{}).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("load schema version: %w", err)
	}
	return version, nil
}

// LatestVersion 返回代码中定义的最新迁移版本。
func LatestVersion() int {
	return migrationSteps[len(migrationSteps)-1].Version
}

func createInitialSchema(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&Food{}, &FoodLog{}, &DailyGoal{}); err != nil {
		return err
	}

	foods := seedFoods()
	return tx.Create(&foods).Error
}

func createRecipes(tx *gorm.DB) error {
	return tx.AutoMigrate(&Recipe{})
}

func seedFoods() []Food {
	return []Food{
		{
			Name:        "Chicken Breast",
			Calories:    165,
			Fat:         3.6,
			Carbs:       0,
			Protein:     31,
			ServingSize: 100,
			ServingUnit: "g",
			IsCustom:    false,
		},
		{
			Name:        "Brown Rice",
			Calories:    112,
			Fat:         0.9,
			Carbs:       23.5,
			Protein:     2.6,
			ServingSize: 100,
			ServingUnit: "g",
			IsCustom:    false,
		},
	}
}
