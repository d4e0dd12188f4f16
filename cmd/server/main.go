package main

import (
	"log"
	"os"
	"strconv"

	"fitstride/config"
	"fitstride/db"
	"fitstride/middlewares"
	"fitstride/routes"
	"fitstride/services"
	"fitstride/utils"
	"fitstride/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.prod.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)

	if err := services.InitCoachService(cfg.Gemini.ApiKey); err != nil {
		log.Printf("Coach service unavailable: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis is a side cache; a failed smoke test degrades rate limiting
	// and caching but does not stop the server
	if err := db.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Redis unavailable: %v", err)
	} else {
		log.Println("Connected to Redis")
	}

	// Seed sample users
	utils.PopulateTestUsers()

	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for the frontend (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.GET("/users/:userId/profile", routes.GetUserProfileRouteHandler)

		auth.POST("/friends/:userId/request", routes.SendFriendRequestRouteHandler)
		auth.POST("/friends/:userId/accept", routes.AcceptFriendRequestRouteHandler)
		auth.POST("/friends/:userId/decline", routes.DeclineFriendRequestRouteHandler)
		auth.DELETE("/friends/:userId", routes.RemoveFriendRouteHandler)
		auth.GET("/friends", routes.GetFriendsRouteHandler)
		auth.GET("/friends/requests", routes.GetPendingRequestsRouteHandler)

		auth.POST("/messages/:userId", routes.SendMessageRouteHandler)
		auth.GET("/messages/:userId", routes.GetConversationRouteHandler)
		auth.GET("/conversations", routes.GetConversationsRouteHandler)
		auth.PUT("/messages/:userId/read", routes.MarkConversationReadRouteHandler)

		auth.POST("/goals", routes.CreateGoalRouteHandler)
		auth.GET("/goals", routes.GetGoalsRouteHandler)
		auth.PUT("/goals/:id", routes.UpdateGoalRouteHandler)
		auth.DELETE("/goals/:id", routes.DeleteGoalRouteHandler)

		auth.POST("/workouts", routes.LogWorkoutRouteHandler)
		auth.GET("/workouts", routes.GetWorkoutsRouteHandler)
		auth.POST("/nutrition", routes.LogNutritionRouteHandler)
		auth.GET("/nutrition", routes.GetNutritionLogsRouteHandler)
		auth.POST("/water", routes.LogWaterRouteHandler)
		auth.GET("/water", routes.GetWaterLogsRouteHandler)
		auth.POST("/weight", routes.LogWeightRouteHandler)
		auth.GET("/weight", routes.GetWeightHistoryRouteHandler)
		auth.GET("/progress/history", routes.GetProgressHistoryRouteHandler)

		auth.GET("/achievements", routes.GetAchievementsRouteHandler)
		auth.POST("/achievements/refresh", routes.RefreshAchievementsRouteHandler)

		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.GET("/notifications", routes.GetNotificationsRouteHandler)
		auth.PUT("/notifications/:id/read", routes.MarkNotificationReadRouteHandler)

		auth.GET("/coach/daily-tip", routes.GetDailyTipRouteHandler)
	}

	// WebSocket endpoint authenticates via query token
	router.GET("/ws/notifications", websocket.NotificationsHandler)

	return router
}
