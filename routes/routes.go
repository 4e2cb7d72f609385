package routes

import (
	"time"

	"fittrack/auth"
	"fittrack/config"
	"fittrack/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(cfg config.Config, client *mongo.Client, a *auth.Auth) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", a.Register(client))
		authGroup.POST("/login", a.Login(client))
	}
	if cfg.GoogleEnabled() {
		r.GET("/auth/google/login", a.GoogleLogin())
		r.GET("/auth/google/callback", a.GoogleCallback(client))
	}

	api := r.Group("/api")
	api.Use(a.Middleware())
	{
		users := api.Group("/users")
		{
			users.GET("/me", services.GetProfile(client))
			users.PUT("/profile", services.UpdateProfile(client))
		}

		workouts := api.Group("/workouts")
		{
			workouts.GET("", services.ListWorkouts(client))
			workouts.GET("/recent", services.RecentWorkouts(client))
			workouts.POST("", services.CreateWorkout(client))
			workouts.PUT("/:id", services.UpdateWorkout(client))
			workouts.DELETE("/:id", services.DeleteWorkout(client))
		}

		nutrition := api.Group("/nutrition")
		{
			nutrition.GET("", services.ListNutritionLogs(client))
			nutrition.GET("/recent", services.RecentNutritionLogs(client))
			nutrition.POST("", services.CreateNutritionLog(client))
			nutrition.POST("/quick-add", services.QuickAddSavedFood(client))
			nutrition.DELETE("/:id", services.DeleteNutritionLog(client))
			nutrition.DELETE("/:id/meals/:mealIndex", services.DeleteMealFromLog(client))
		}

		savedFoods := api.Group("/saved-foods")
		{
			savedFoods.GET("", services.ListSavedFoods(client))
			savedFoods.POST("", services.CreateSavedFood(client))
			savedFoods.POST("/:id/scale", services.ScaleSavedFood(client))
			savedFoods.DELETE("/:id", services.DeleteSavedFood(client))
		}

		plans := api.Group("/plans")
		{
			plans.GET("", services.ListWorkoutPlans(client))
			plans.GET("/:id", services.GetWorkoutPlan(client))
			plans.POST("", services.CreateWorkoutPlan(client))
			plans.POST("/:id/complete", services.CompleteWorkoutPlan(client))
			plans.PUT("/:id", services.UpdateWorkoutPlan(client))
			plans.DELETE("/:id", services.DeleteWorkoutPlan(client))
		}

		api.GET("/stats", services.GetStats(client))
	}

	return r
}
