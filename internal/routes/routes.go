package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/tunckiral/pocketledger/internal/config"
	"github.com/tunckiral/pocketledger/internal/handlers"
	"github.com/tunckiral/pocketledger/internal/middleware"
)

// Setup wires the controller routes. Paths mirror the original client
// contract: POST-only controller actions under /user, /accountBook and
// /record. Only createUser and loginUser are reachable without a token.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	accountBookHandler *handlers.AccountBookHandler,
	recordHandler *handlers.RecordHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	user := app.Group("/user")

	// Credential endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	user.Post("/createUser", authLimiter, userHandler.Create)
	user.Post("/loginUser", authLimiter, userHandler.Login)

	user.Post("/updateUser", middleware.JWTProtected(cfg), userHandler.Update)
	user.Post("/deleteUser", middleware.JWTProtected(cfg), userHandler.Delete)

	accountBook := app.Group("/accountBook", middleware.JWTProtected(cfg))
	accountBook.Post("/createAccountBook", accountBookHandler.Create)
	accountBook.Post("/getAccountBooks", accountBookHandler.List)
	accountBook.Post("/updateAccountBook", accountBookHandler.Update)
	accountBook.Post("/deleteAccountBook", accountBookHandler.Delete)

	record := app.Group("/record", middleware.JWTProtected(cfg))
	record.Post("/createRecord", recordHandler.Create)
	record.Post("/getRecords", recordHandler.List)
	record.Post("/updateRecord", recordHandler.Update)
	record.Post("/deleteRecord", recordHandler.Delete)
}
