package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/handler"
	"funkopop-api/internal/middleware"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/internal/service"
	"funkopop-api/internal/ws"
	"funkopop-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.FunkoPop{}, &model.Review{}, &model.User{})

	// 3. Setup WebSocket Hub for the live catalog feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	popRepo := repository.NewFunkoPopRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	userRepo := repository.NewUserRepo(db)

	popService := service.NewFunkoPopService(popRepo, wsHub)
	reviewService := service.NewReviewService(reviewRepo, popRepo, wsHub)
	authService := service.NewAuthService(userRepo)

	popHandler := handler.NewFunkoPopHandler(popService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "FunkoPops API v1.0",
		ErrorHandler: apperror.Handler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	requireAuth := middleware.RequireAuth(userRepo)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to FunkoPops"})
	})

	api := app.Group("/api/1.0")

	// Funko pop routes
	pops := api.Group("/funkopops")
	pops.Get("/", popHandler.GetAll)
	pops.Get("/:id", popHandler.GetByID)
	pops.Post("/", requireAuth, adminOnly, popHandler.Create)
	pops.Patch("/:id", requireAuth, adminOnly, popHandler.Edit)
	pops.Delete("/:id", requireAuth, adminOnly, popHandler.Delete)

	// Review routes (nested under the parent funko pop)
	pops.Get("/:id/reviews", reviewHandler.List)
	pops.Post("/:id/reviews", requireAuth, reviewHandler.Create)
	pops.Patch("/:id/reviews/:reviewId", requireAuth, reviewHandler.Edit)
	pops.Delete("/:id/reviews/:reviewId", requireAuth, reviewHandler.Delete)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Get("/get-user", requireAuth, authHandler.GetUser)

	// WebSocket route for the live catalog feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Catch-all for unmatched paths
	app.Use(func(c *fiber.Ctx) error {
		return apperror.RouteNotFound()
	})

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
