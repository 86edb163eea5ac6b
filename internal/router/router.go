package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nabekabebe/recipe-api/internal/cache"
	"github.com/nabekabebe/recipe-api/internal/config"
	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/handler"
	"github.com/nabekabebe/recipe-api/internal/handler/recipes"
	"github.com/nabekabebe/recipe-api/internal/handler/users"
	"github.com/nabekabebe/recipe-api/internal/middleware"
	"github.com/nabekabebe/recipe-api/internal/worker"
)

// Setup registers all routes. Everything except registration, token
// exchange and the health probe sits behind RequireAuth.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg config.Config, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthHandler(db, rdb))

	limited := middleware.RateLimit(5, 10)
	user := api.Group("/user")
	user.POST("/create", users.CreateUserHandler(db), limited)
	user.POST("/token", users.TokenHandler(db, rdb, cfg.TokenTTL), limited)

	me := user.Group("/me", middleware.RequireAuth(rdb))
	me.GET("", users.GetMeHandler(db))
	me.PATCH("", users.UpdateMeHandler(db))

	recipe := api.Group("/recipe", middleware.RequireAuth(rdb))
	recipe.GET("/recipes", recipes.ListRecipesHandler(db))
	recipe.POST("/recipes", recipes.CreateRecipeHandler(db))
	recipe.GET("/recipes/:id", recipes.GetRecipeHandler(db))
	recipe.PUT("/recipes/:id", recipes.ReplaceRecipeHandler(db))
	recipe.PATCH("/recipes/:id", recipes.UpdateRecipeHandler(db))
	recipe.DELETE("/recipes/:id", recipes.DeleteRecipeHandler(db))
	recipe.POST("/recipes/:id/upload-image", recipes.UploadImageHandler(db, wp, cfg.MediaRoot))

	// Tags and ingredients have no create endpoint; rows come into being
	// through recipe writes only.
	recipe.GET("/tags", recipes.ListTagsHandler(db))
	recipe.PUT("/tags/:id", recipes.ReplaceTagHandler(db))
	recipe.PATCH("/tags/:id", recipes.UpdateTagHandler(db))
	recipe.DELETE("/tags/:id", recipes.DeleteTagHandler(db))

	recipe.GET("/ingredients", recipes.ListIngredientsHandler(db))
	recipe.PUT("/ingredients/:id", recipes.ReplaceIngredientHandler(db))
	recipe.PATCH("/ingredients/:id", recipes.UpdateIngredientHandler(db))
	recipe.DELETE("/ingredients/:id", recipes.DeleteIngredientHandler(db))
}
