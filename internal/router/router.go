package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, logger *slog.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.LocaleMiddleware())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/foods", api.ListFoods)
		apiGroup.POST("/foods", api.CreateFood)
		apiGroup.PUT("/foods/:id", api.UpdateFood)
		apiGroup.POST("/foods/:id/pin", api.ToggleFoodPin)
		apiGroup.DELETE("/foods/:id", api.DeleteFood)

		apiGroup.GET("/recipes", api.ListRecipes)
		apiGroup.POST("/recipes", api.CreateRecipe)
		apiGroup.PUT("/recipes/:id", api.UpdateRecipe)
		apiGroup.POST("/recipes/:id/pin", api.ToggleRecipePin)
		apiGroup.DELETE("/recipes/:id", api.DeleteRecipe)

		apiGroup.POST("/logs/food", api.LogFood)
		apiGroup.POST("/logs/recipe", api.LogRecipe)
		apiGroup.POST("/logs/batch", api.LogBatch)
		apiGroup.DELETE("/logs/:id", api.DeleteLog)

		apiGroup.GET("/days/:date", api.GetDay)
		apiGroup.GET("/weeks/:end", api.GetWeek)

		apiGroup.GET("/goals", api.GetGoals)
		apiGroup.PUT("/goals", api.UpdateGoals)
		apiGroup.POST("/goals/percentages", api.AdjustMacroPercentage)
	}

	return r
}
