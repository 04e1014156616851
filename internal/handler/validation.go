package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/platelog/internal/service"
)

var validatorsOnce sync.Once

// registerValidators 向 gin 使用的校验器注册自定义规则。
func registerValidators() {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("mealtime", func(fl validator.FieldLevel) bool {
			_, err := service.ParseMealTime(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("macro", func(fl validator.FieldLevel) bool {
			_, err := service.ParseMacro(fl.Field().String())
			return err == nil
		})
	})
}
