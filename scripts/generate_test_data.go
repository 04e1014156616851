package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/platelog/internal/config"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
)

type demoSummary struct {
	Foods   int
	Recipes int
	Logs    int
}

// 测试数据生成器
func main() {
	days := flag.Int("days", 14, "number of days of logs to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}

	// 初始化数据库
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	defer db.Close(gdb)

	fmt.Println("开始生成测试数据...")

	store := service.NewNutritionStore(gdb)
	summary, err := generateDemoData(store, time.Now(), *days)
	if err != nil {
		log.Fatal("测试数据生成失败:", err)
	}

	fmt.Println("测试数据生成完成！")
	fmt.Printf("食物: %d 个\n", summary.Foods)
	fmt.Printf("食谱: %d 个\n", summary.Recipes)
	fmt.Printf("记录: %d 条（%d 天）\n", summary.Logs, *days)
}

var demoFoods = []service.FoodInput{
	{Name: "Oats", Calories: 389, Fat: 6.9, Carbs: 66.3, Protein: 16.9, ServingSize: 100, ServingUnit: "g", IsCustom: true},
	{Name: "Banana", Calories: 89, Fat: 0.3, Carbs: 22.8, Protein: 1.1, ServingSize: 100, ServingUnit: "g", IsCustom: true},
	{Name: "Greek Yogurt", Calories: 59, Fat: 0.4, Carbs: 3.6, Protein: 10.3, ServingSize: 100, ServingUnit: "g", IsCustom: true},
	{Name: "Almonds", Calories: 579, Fat: 49.9, Carbs: 21.6, Protein: 21.2, ServingSize: 100, ServingUnit: "g", IsCustom: true, IsPinned: true},
	{Name: "Salmon", Calories: 208, Fat: 13.4, Carbs: 0, Protein: 20.4, ServingSize: 100, ServingUnit: "g", IsCustom: true},
}

// 午餐使用的内置食物，库中已被删除时按此数据重建
var lunchFoods = []service.FoodInput{
	{Name: "Chicken Breast", Calories: 165, Fat: 3.6, Carbs: 0, Protein: 31, ServingSize: 100, ServingUnit: "g"},
	{Name: "Brown Rice", Calories: 112, Fat: 0.9, Carbs: 23.5, Protein: 2.6, ServingSize: 100, ServingUnit: "g"},
}

// findOrCreateFoods 按名称查找食物，缺失的按给定数据新建；返回名称到 ID 的映射与新建数量
func findOrCreateFoods(store *service.NutritionStore, inputs []service.FoodInput) (map[string]uint, int, error) {
	existing, err := store.Foods.List()
	if err != nil {
		return nil, 0, fmt.Errorf("list foods: %w", err)
	}

	byName := make(map[string]uint, len(existing))
	for _, food := range existing {
		if _, ok := byName[food.Name]; !ok {
			byName[food.Name] = food.ID
		}
	}

	ids := make(map[string]uint, len(inputs))
	created := 0
	for _, input := range inputs {
		if id, ok := byName[input.Name]; ok {
			ids[input.Name] = id
			continue
		}
		id, err := store.Foods.Create(input)
		if err != nil {
			return nil, created, fmt.Errorf("create food %s: %w", input.Name, err)
		}
		ids[input.Name] = id
		created++
	}
	return ids, created, nil
}

// generateDemoData 写入示例食物、一个食谱与截至 end 的 days 天记录，并设置每日目标
func generateDemoData(store *service.NutritionStore, end time.Time, days int) (demoSummary, error) {
	var summary demoSummary

	ids := make(map[string]uint, len(demoFoods))
	for _, food := range demoFoods {
		id, err := store.Foods.Create(food)
		if err != nil {
			return summary, fmt.Errorf("create food %s: %w", food.Name, err)
		}
		ids[food.Name] = id
		summary.Foods++
	}

	lunch, created, err := findOrCreateFoods(store, lunchFoods)
	if err != nil {
		return summary, err
	}
	summary.Foods += created

	bowlID, err := store.Recipes.Compose(service.RecipeInput{
		Name: "Breakfast Bowl",
		Items: []db.RecipeItem{
			{FoodID: ids["Oats"], Amount: 60},
			{FoodID: ids["Banana"], Amount: 120},
			{FoodID: ids["Greek Yogurt"], Amount: 150},
		},
	})
	if err != nil {
		return summary, fmt.Errorf("compose recipe: %w", err)
	}
	summary.Recipes++

	if err := store.Goals.Update(service.DailyGoals{
		Calories:          2200,
		FatPercentage:     25,
		CarbsPercentage:   45,
		ProteinPercentage: 30,
	}); err != nil {
		return summary, fmt.Errorf("update goals: %w", err)
	}

	for offset := days - 1; offset >= 0; offset-- {
		date := end.AddDate(0, 0, -offset).Format(service.DateLayout)

		if _, err := store.Logs.LogRecipe(service.RecipeLogInput{
			RecipeID:   bowlID,
			Date:       date,
			Amount:     1,
			TimeLogged: "07:30:00",
			TimeOfDay:  service.MealBreakfast,
		}); err != nil {
			return summary, fmt.Errorf("log breakfast on %s: %w", date, err)
		}

		created, err := store.Logs.LogBatch(service.LogBatchInput{
			Date:       date,
			TimeLogged: "12:15:00",
			TimeOfDay:  service.MealLunch,
			Entries: []service.LogEntry{
				{FoodID: lunch["Chicken Breast"], Amount: 150 + float64(offset%3)*25},
				{FoodID: lunch["Brown Rice"], Amount: 200},
			},
		})
		if err != nil {
			return summary, fmt.Errorf("log lunch on %s: %w", date, err)
		}

		if _, err := store.Logs.LogFood(service.FoodLogInput{
			FoodID:     ids["Almonds"],
			Date:       date,
			Amount:     30,
			TimeLogged: "16:00:00",
			TimeOfDay:  service.MealPMSnack,
		}); err != nil {
			return summary, fmt.Errorf("log snack on %s: %w", date, err)
		}

		if _, err := store.Logs.LogFood(service.FoodLogInput{
			FoodID:     ids["Salmon"],
			Date:       date,
			Amount:     180,
			TimeLogged: "19:00:00",
			TimeOfDay:  service.MealDinner,
		}); err != nil {
			return summary, fmt.Errorf("log dinner on %s: %w", date, err)
		}

		summary.Logs += 3 + len(created)
	}

	return summary, nil
}
