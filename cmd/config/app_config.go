package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"fridgetofeast/internal/api/handlers"
	"fridgetofeast/internal/api/routes"
	"fridgetofeast/internal/middleware"
	"fridgetofeast/internal/utils"
	"fridgetofeast/internal/utils/storage"
	"fridgetofeast/pkg/analytics"
	"fridgetofeast/pkg/fridge"
	"fridgetofeast/pkg/jwt"
	"fridgetofeast/pkg/recipe"
	"fridgetofeast/pkg/shopping"
	"fridgetofeast/pkg/user"
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
		TimeZone:   "UTC",
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
	fridgeRepository := fridge.NewFridgeRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	fridgeService := fridge.NewFridgeService(fridgeRepository, s3)
	shoppingService := shopping.NewShoppingService(shoppingRepository, fridgeService)
	recipeService := recipe.NewRecipeService(recipeRepository, fridgeRepository, userRepository)
	analyticsService := analytics.NewAnalyticsService(fridgeRepository, shoppingRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FridgeHandler:    fridgeHandler,
		ShoppingHandler:  shoppingHandler,
		RecipeHandler:    recipeHandler,
		AnalyticsHandler: analyticsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
