package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sanchalak/sanchalak-api/internal/config"
	"github.com/sanchalak/sanchalak-api/internal/database"
	"github.com/sanchalak/sanchalak-api/internal/handlers"
	"github.com/sanchalak/sanchalak-api/internal/mailer"
	"github.com/sanchalak/sanchalak-api/internal/middleware"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"github.com/sanchalak/sanchalak-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Outbound mail; nil disables delivery in development
	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg)
	} else {
		log.Println("SMTP_HOST not set, mail notifications disabled")
	}

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTLHours)
	teamService := services.NewTeamService(userRepo, activityRepo, mail)
	taskService := services.NewTaskService(taskRepo, userRepo, activityRepo, mail)
	dashboardService := services.NewDashboardService(taskRepo, userRepo, activityRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	leaderHandler := handlers.NewLeaderHandler(teamService)
	taskHandler := handlers.NewTaskHandler(taskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/api/ping", func(c *gin.Context) {
		c.String(200, "Server is awake!")
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Team directory and activity log (leader only)
		leader := api.Group("/leader")
		leader.Use(middleware.RequireAuth(authService), middleware.RequireRole(models.RoleLeader))
		{
			leader.GET("/all", leaderHandler.GetTeamMembers)
			leader.POST("/add", leaderHandler.AddMember)
			leader.DELETE("/remove/:id", leaderHandler.RemoveMember)
			leader.GET("/log", leaderHandler.GetActivityLogs)
		}

		// Task store
		task := api.Group("/task")
		task.Use(middleware.RequireAuth(authService))
		{
			task.GET("/all", middleware.RequireRole(models.RoleLeader), taskHandler.GetAllTasks)
			task.POST("/create", middleware.RequireRole(models.RoleLeader), taskHandler.CreateTask)
			task.DELETE("/delete/:id", middleware.RequireRole(models.RoleLeader), taskHandler.DeleteTask)
			task.GET("/mytask", middleware.RequireRole(models.RoleMember), taskHandler.GetMyTasks)
			task.PATCH("/status/:id", middleware.RequireRole(models.RoleMember), taskHandler.UpdateTaskStatus)
		}

		// Dashboards
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireAuth(authService))
		{
			dashboard.GET("/leader", middleware.RequireRole(models.RoleLeader), dashboardHandler.GetLeaderDashboard)
			dashboard.GET("/member", middleware.RequireRole(models.RoleMember), dashboardHandler.GetMemberDashboard)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
