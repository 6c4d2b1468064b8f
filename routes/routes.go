package routes

import (
	"github.com/ProDexortie/zdorovoeda/controllers"
	"github.com/ProDexortie/zdorovoeda/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		profile := auth.Group("/profile")
		profile.Use(middlewares.AuthMiddleware())
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}
	}

	meals := api.Group("/meals")
	{
		meals.GET("", controllers.ListMeals)
		meals.GET("/recommendations", middlewares.AuthMiddleware(), controllers.GetRecommendations)
		meals.GET("/:id", controllers.GetMeal)

		admin := meals.Group("")
		admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
		{
			admin.POST("", controllers.CreateMeal)
			admin.PUT("/:id", controllers.UpdateMeal)
			admin.DELETE("/:id", controllers.DeleteMeal)
		}
	}

	orders := api.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("/myorders", controllers.GetMyOrders)
		orders.GET("/:id", controllers.GetOrder)

		admin := orders.Group("")
		admin.Use(middlewares.AdminMiddleware())
		{
			admin.GET("", controllers.GetOrders)
			admin.PUT("/:id/status", controllers.UpdateOrderStatus)
			admin.PUT("/:id/pay", controllers.UpdateOrderPaymentStatus)
		}
	}

	return r
}
