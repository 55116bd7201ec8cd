package routes

import (
	"FitnessPro-Backend/internal/api/handlers"
	"FitnessPro-Backend/internal/middleware"
	"FitnessPro-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	NutritionHandler    handlers.NutritionHandler
	PlanHandler         handlers.PlanHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Nutrition()
	c.Plans()
	c.Subscriptions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/profile-picture", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfilePicture)
		user.Get("/notifications", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetNotifications)
		user.Patch("/notifications/:id/read", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ReadNotification)
	}
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/v1/nutrition", c.Middleware.AuthMiddleware(c.JWTService))

	nutrition.Get("", c.NutritionHandler.GetNutritionLogs)
	nutrition.Post("", c.NutritionHandler.CreateNutritionLog)
	nutrition.Put("", c.NutritionHandler.UpdateNutritionLog)
	nutrition.Delete("", c.NutritionHandler.DeleteNutritionLog)
}

func (c *Config) Plans() {
	plans := c.App.Group("/api/v1/plans")

	plans.Get("", c.PlanHandler.GetPlans)
	plans.Get("/:id", c.PlanHandler.GetPlanDetails)

	admin := c.Middleware.AuthMiddleware(c.JWTService)
	plans.Post("", admin, c.Middleware.AdminOnly(), c.PlanHandler.CreatePlan)
	plans.Post("/image", admin, c.Middleware.AdminOnly(), c.PlanHandler.UploadPlanImage)
}

func (c *Config) Subscriptions() {
	subscriptions := c.App.Group("/api/v1/subscriptions", c.Middleware.AuthMiddleware(c.JWTService))

	subscriptions.Post("", c.SubscriptionHandler.Subscribe)
	subscriptions.Get("", c.SubscriptionHandler.GetSubscriptions)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.PaymentWebhook)
}
