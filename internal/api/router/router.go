package router

import (
	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tagHandler *handler.TagHandler,
	ingredientHandler *handler.IngredientHandler,
	recipeHandler *handler.RecipeHandler,
) {
	api := r.Group("/api")

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/token/login", authHandler.Login)
		auth.POST("/token/logout", middleware.AuthRequired(), authHandler.Logout)
	}

	// --- 用户与订阅模块 ---
	users := api.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("", middleware.AuthOptional(), userHandler.List)
		users.GET("/:id", middleware.AuthOptional(), userHandler.GetByID)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.GET("/me", userHandler.Me)
			usersAuth.GET("/subscriptions", userHandler.ListSubscriptions)
			usersAuth.POST("/:id/subscribe", userHandler.Subscribe)
			usersAuth.DELETE("/:id/subscribe", userHandler.Unsubscribe)
		}
	}

	// --- 标签模块（公开只读） ---
	tags := api.Group("/tags")
	{
		tags.GET("", tagHandler.List)
		tags.GET("/:id", tagHandler.GetByID)
	}

	// --- 食材模块（公开只读） ---
	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.Search)
		ingredients.GET("/:id", ingredientHandler.GetByID)
	}

	// --- 菜谱模块 ---
	recipes := api.Group("/recipes")
	{
		// 公开接口，登录用户附带收藏/购物车标记
		recipes.GET("", middleware.AuthOptional(), recipeHandler.List)
		recipes.GET("/:id", middleware.AuthOptional(), recipeHandler.GetByID)

		recipesAuth := recipes.Group("", middleware.AuthRequired())
		{
			recipesAuth.POST("", recipeHandler.Create)
			recipesAuth.PATCH("/:id", recipeHandler.Update)
			recipesAuth.DELETE("/:id", recipeHandler.Delete)

			recipesAuth.POST("/:id/favorite", recipeHandler.Favorite)
			recipesAuth.DELETE("/:id/favorite", recipeHandler.Unfavorite)

			recipesAuth.POST("/:id/shopping_cart", recipeHandler.AddToCart)
			recipesAuth.DELETE("/:id/shopping_cart", recipeHandler.RemoveFromCart)
			recipesAuth.GET("/download_shopping_cart", recipeHandler.DownloadShoppingCart)

			recipesAuth.POST("/:id/image", recipeHandler.UploadImage)
		}
	}
}
