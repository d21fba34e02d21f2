package api

import (
	"pricescout/docs"
	"pricescout/internal/api/handlers"
	"pricescout/internal/dto"
	"pricescout/pkg/auth"
	"pricescout/pkg/config"
	"pricescout/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Search    *handlers.SearchHandler
	Analyze   *handlers.AnalyzeHandler
	Affiliate *handlers.AffiliateHandler
	History   *handlers.HistoryHandler
	Saved     *handlers.SavedHandler
}

func SetupRouter(
	cfg *config.Config,
	h Handlers,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// Single boundary for anything a handler did not map itself.
		// Internal failures are logged in full but reach the caller as a
		// fixed message; details are exposed only outside production.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled request error",
					zap.String("path", c.Path()),
					zap.Error(err),
				)
				if cfg.IsProduction() {
					return c.Status(code).JSON(dto.Fail("Internal Server Error"))
				}
				return c.Status(code).JSON(dto.Fail("Internal Server Error", err.Error()))
			}
			return c.Status(code).JSON(dto.Fail(err.Error()))
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the generated swagger spec via init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes: authentication runs before everything else, then the
	// best-effort per-client rate limit.
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute)
	protected := app.Group("/api/v1",
		middleware.Auth(jwtManager, appLogger),
		rateLimiter.Middleware(),
	)

	protected.Post("/search", h.Search.Search)
	protected.Post("/analyze", h.Analyze.Analyze)
	protected.Post("/affiliate", h.Affiliate.BuildLink)

	protected.Get("/history", h.History.List)
	protected.Delete("/history", h.History.Delete)
	protected.Post("/history/retry", h.History.Retry)

	protected.Get("/saved", h.Saved.List)
	protected.Post("/saved", h.Saved.Create)
	protected.Patch("/saved", h.Saved.Update)
	protected.Delete("/saved", h.Saved.Delete)

	return app
}
