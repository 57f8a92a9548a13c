package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinboard-backend/internal/blobstore"
	"pinboard-backend/internal/blobstore/gridfs"
	minioblob "pinboard-backend/internal/blobstore/minio"
	"pinboard-backend/internal/db"
	"pinboard-backend/internal/handlers"
	"pinboard-backend/internal/services"
	"pinboard-backend/internal/store"
	"pinboard-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const tokenTTL = 24 * time.Hour

// New assembles the Fiber app with every route wired to the given stores.
// Tests call this directly with in-memory implementations.
func New(stores *store.Stores, blobs blobstore.Store, jwtSecret []byte) *fiber.App {
	userService := services.NewUserService(stores.Users, jwtSecret, tokenTTL)
	placeService := services.NewPlaceService(stores.Places, blobs)
	pinService := services.NewPinService(stores.Pins, stores.Moves)
	historyService := services.NewHistoryService(stores.History)
	settingsService := services.NewSettingsService(stores.Settings)

	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	api := app.Group("/api")

	// Public Routes
	api.Post("/register", handlers.RegisterHandler(userService))
	api.Post("/login", handlers.LoginHandler(userService))
	api.Get("/check_username/:username", handlers.CheckUsernameHandler(userService))

	// Protected Routes
	auth := handlers.AuthMiddleware(userService)
	protected := api.Group("/", auth)

	protected.Post("/places", handlers.CreatePlaceHandler(placeService))
	protected.Get("/places/:place_id", handlers.GetPlaceHandler(placeService))
	protected.Get("/places/:place_id/image", handlers.GetPlaceImageHandler(placeService))

	protected.Get("/places/:place_id/pins", handlers.ListPinsHandler(pinService))
	protected.Post("/places/:place_id/pins", handlers.CreatePinHandler(pinService))
	protected.Put("/pins/:pin_id", handlers.UpdatePinHandler(pinService))
	protected.Delete("/pins/:pin_id", handlers.DeletePinHandler(pinService))

	protected.Get("/places/:place_id/history", handlers.ListHistoryHandler(historyService))
	protected.Post("/places/:place_id/history", handlers.RecordHistoryHandler(historyService))

	protected.Get("/last_place", handlers.GetLastPlaceHandler(settingsService))
	protected.Put("/last_place", handlers.SetLastPlaceHandler(settingsService))
	protected.Delete("/last_place", handlers.ClearLastPlaceHandler(settingsService))

	// Legacy move endpoint lives outside /api for backward compatibility.
	app.Post("/items/:item_id/move", auth, handlers.MoveItemHandler(pinService))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Init DB
	uri := utils.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	client, database, err := db.Connect(context.Background(), uri, utils.GetEnv("MONGO_DB", "pinboard"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Disconnect(client)

	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Blob storage backend
	var blobs blobstore.Store
	switch backend := utils.GetEnv("BLOB_BACKEND", "gridfs"); backend {
	case "gridfs":
		blobs, err = gridfs.New(database)
	case "minio":
		blobs, err = minioblob.New(minioblob.Config{
			Endpoint:  utils.GetEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: utils.GetEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: utils.GetEnv("MINIO_SECRET_KEY", ""),
			Bucket:    utils.GetEnv("MINIO_BUCKET", "pinboard-images"),
			UseSSL:    utils.GetEnvBool("MINIO_USE_SSL", false),
		})
	default:
		log.Fatalf("Unknown BLOB_BACKEND: %q", backend)
	}
	if err != nil {
		log.Fatalf("Failed to init blob storage: %v", err)
	}

	jwtSecret := []byte(utils.GetEnv("JWT_SECRET", "secret"))
	app := New(store.NewMongoStores(database), blobs, jwtSecret)

	// Start Server
	port := utils.GetEnv("PORT", "3001")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
