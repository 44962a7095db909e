package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/controllers"
	"github.com/Shnickelbob/Fall-2025-MacroPal/middlewares"
)

// Deps holds everything the router needs; main builds it once and passes it
// in, keeping wiring out of package globals.
type Deps struct {
	Log       *zap.Logger
	JWTSecret []byte

	Health   *controllers.HealthController
	Auth     *controllers.AuthController
	LogCtl   *controllers.LogController
	Goals    *controllers.GoalController
	Foods    *controllers.FoodController
	Recipes  *controllers.RecipeController
	Saved    *controllers.SavedController
	Realtime *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log))

	api := r.Group("/api")

	api.GET("/health", d.Health.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		protected.POST("/log", d.LogCtl.PostLog)
		protected.GET("/log/today", d.LogCtl.GetToday)
		protected.DELETE("/log/:id", d.LogCtl.DeleteLog)
		protected.DELETE("/log", d.LogCtl.DeleteBatch)

		protected.GET("/user/goals", d.Goals.GetGoals)
		protected.PATCH("/user/goals", d.Goals.PatchGoals)

		protected.GET("/search", d.Foods.Search)
		protected.POST("/foods", d.Foods.PostFood)

		protected.GET("/recipes", d.Recipes.ListRecipes)
		protected.GET("/recipes/:id", d.Recipes.GetRecipe)
		protected.POST("/recipes/:id/log", d.Recipes.LogRecipe)

		protected.GET("/saved", d.Saved.ListSaved)
		protected.POST("/saved", d.Saved.AddSaved)
		protected.DELETE("/saved/:foodId", d.Saved.RemoveSaved)

		protected.GET("/ws/log", d.Realtime.LogWS)
	}

	return r
}
