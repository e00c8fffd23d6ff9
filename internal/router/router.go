package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/config"
	"github.com/monlivredecuisine/backend/internal/api"
	"github.com/monlivredecuisine/backend/internal/middleware"
	"github.com/monlivredecuisine/backend/internal/service"
)

// SetupRouter configures the application routes. redisClient may be nil, in
// which case the rate limiters pass every request through.
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	fridgeHandler *api.FridgeHandler,
	adminHandler *api.AdminHandler,
	auth *service.AuthService,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.FrontendURL, cfg.CORSAllowAll),
	)

	router.GET("/", api.Root)
	router.GET("/health", api.Health(db))

	authRequired := middleware.AuthMiddleware(auth)
	createLimiter := middleware.NewRecipeCreationRateLimiter(redisClient).Middleware()
	searchLimiter := middleware.NewFridgeSearchRateLimiter(redisClient).Middleware()

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authRequired, authHandler.Me)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.Get)
		recipes.POST("", authRequired, createLimiter, recipeHandler.Create)
		recipes.PUT("/:id", authRequired, recipeHandler.Update)
		recipes.DELETE("/:id", authRequired, recipeHandler.Delete)
	}

	router.POST("/search/frigo", searchLimiter, fridgeHandler.Search)

	admin := router.Group("/admin")
	{
		// Bootstrap path: authenticated, but deliberately not behind the
		// admin check — it is how the first admin comes to exist.
		admin.PUT("/make-first-admin", authRequired, adminHandler.MakeFirstAdmin)

		protected := admin.Group("")
		protected.Use(authRequired, middleware.RequireAdmin(auth))
		{
			protected.GET("/users", adminHandler.ListUsers)
			protected.DELETE("/users/:id", adminHandler.DeleteUser)
			protected.DELETE("/recipes/:id", adminHandler.DeleteRecipe)
			protected.PUT("/users/:id/toggle-admin", adminHandler.ToggleAdmin)
		}
	}

	return router
}
