package main

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/smarket/storefront-bff/internal/banner"
	"github.com/smarket/storefront-bff/internal/collection"
	"github.com/smarket/storefront-bff/internal/config"
	"github.com/smarket/storefront-bff/internal/flashdeal"
	"github.com/smarket/storefront-bff/internal/gateway"
	"github.com/smarket/storefront-bff/internal/home"
	"github.com/smarket/storefront-bff/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	api := gateway.New(cfg.Content)

	bannerService := banner.NewService(api)
	collectionService := collection.NewService(api)
	flashDealService := flashdeal.NewService(api)
	userService := user.NewService(api)

	composer := home.NewComposer(bannerService, collectionService, flashDealService, clock.New(), cfg.Home)
	defer composer.Close()

	// admin deletes prune the held homepage view without a refetch
	collectionService.NotifyDeleted(composer.DropCollection)

	// initial homepage load; widgets whose fetch fails render empty until
	// the next refresh
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Content.Timeout())
	composer.Refresh(ctx)
	cancel()

	home.NewHandler(composer).RegisterPublicRoutes(app)

	admin := app.Group("/api/v1/admin")
	if cfg.Auth.JWTSecret != "" {
		admin.Use(adminGuard(cfg.Auth.JWTSecret))
	} else {
		log.Warn("auth.jwt_secret is empty; admin routes are unprotected")
	}

	collection.NewHandler(collectionService).RegisterAdminRoutes(admin)
	flashdeal.NewHandler(flashDealService).RegisterAdminRoutes(admin)
	user.NewHandler(userService).RegisterAdminRoutes(admin)

	log.Infof("listening on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// adminGuard rejects admin requests without a valid bearer token. Tokens are
// issued by the upstream auth service; this service only verifies them.
func adminGuard(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
	})
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Debugf("%s %s -> %d (%v)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
