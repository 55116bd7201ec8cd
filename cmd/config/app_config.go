package config

import (
	"FitnessPro-Backend/internal/api/handlers"
	"FitnessPro-Backend/internal/api/routes"
	"FitnessPro-Backend/internal/middleware"
	"FitnessPro-Backend/internal/utils"
	"FitnessPro-Backend/internal/utils/storage"
	"FitnessPro-Backend/pkg/jwt"
	"FitnessPro-Backend/pkg/nutrition"
	"FitnessPro-Backend/pkg/plan"
	"FitnessPro-Backend/pkg/subscription"
	"FitnessPro-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)
	planRepository := plan.NewPlanRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	nutritionService := nutrition.NewNutritionService(nutritionRepository)
	planService := plan.NewPlanService(planRepository, s3)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, planRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		NutritionHandler:    nutritionHandler,
		PlanHandler:         planHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
