package main

import (
	"log"
	"strconv"
	"time"

	"agorahub/config"
	"agorahub/controllers"
	"agorahub/internal/debate"
	"agorahub/middlewares"
	"agorahub/routes"
	"agorahub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	hub := websocket.NewHub()
	manager := debate.NewManager(
		debate.Limits{
			MaxSuggestions:      cfg.Debate.MaxSuggestions,
			MaxSuggestionLength: cfg.Debate.MaxSuggestionLength,
		},
		debate.NewProfanityOracle(),
		hub,
	)

	// Set up the Gin router and configure routes
	router := setupRouter(cfg, manager, hub)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, manager *debate.Manager, hub *websocket.Hub) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for your frontend (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Moderator-Password"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Participant websocket endpoint; the uuid query parameter is hashed
	// into the per-connection dedup identity.
	wsHandler := websocket.NewHandler(hub, manager, websocket.ReactionPolicy{
		MaxReactions: cfg.Debate.MaxReactions,
		Window:       time.Duration(cfg.Debate.ReactionWindowSeconds) * time.Second,
	})
	router.GET("/ws/debates/:debateID", wsHandler.Serve)

	// Moderator routes behind the shared password gate
	moderator := router.Group("/moderator")
	moderator.Use(middlewares.ModeratorAuth(cfg.Moderator.Password))
	routes.SetupModeratorRoutes(moderator, controllers.NewModeratorController(manager, hub))

	return router
}
