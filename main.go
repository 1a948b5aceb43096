package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"trendreel/functions/config"
	_ "trendreel/functions/docs"
	"trendreel/functions/handlers"
	"trendreel/functions/internal/auth"
	"trendreel/functions/internal/billing"
	"trendreel/functions/internal/store"
	"trendreel/functions/internal/virality"
	"trendreel/functions/middleware"
	"trendreel/functions/utils"
)

// @title TrendReel Functions API
// @version 1.0
// @description Trend capture, credit billing and video job endpoints backed by Supabase.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.InitLogger("info").Fatalf("Failed to load config: %v", err)
	}
	log := config.InitLogger(cfg.LogLevel)
	if cfg.UsingAnonKey() {
		log.Warn("No service key configured, falling back to SUPABASE_ANON_KEY; row level security applies")
	}

	db, err := store.NewSupabaseStore(cfg.SupabaseURL, cfg.ServiceKey())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	var verifier middleware.TokenVerifier
	if cfg.SupabaseJWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.SupabaseJWTSecret)
		log.Info("Verifying bearer tokens with the project JWT secret")
	} else {
		client, err := config.NewSupabaseClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		verifier = auth.NewSupabaseVerifier(client)
	}

	h := handlers.NewApplicationHandler(
		db,
		billing.NewStubProcessor(cfg.StripePriceID, log),
		virality.NewRefresher(db, log),
		log,
	)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})

	app.Use(recover.New())
	app.Use(middleware.Preflight())
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Functions are healthy",
		})
	})
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	h.Register(app, middleware.RequireUser(verifier, log))

	log.Infof("Starting functions server on %s", cfg.ListenAddr())
	log.Fatal(app.Listen(cfg.ListenAddr()))
}
