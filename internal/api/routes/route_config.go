package routes

import (
	"github.com/gofiber/fiber/v2"

	"fridgetofeast/internal/api/handlers"
	"fridgetofeast/internal/middleware"
	"fridgetofeast/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FridgeHandler    handlers.FridgeHandler
	ShoppingHandler  handlers.ShoppingHandler
	RecipeHandler    handlers.RecipeHandler
	AnalyticsHandler handlers.AnalyticsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Fridge()
	c.Shopping()
	c.Recipes()
	c.Analytics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/prefs", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePrefs)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Fridge() {
	fridge := c.App.Group("/api/v1/fridge", c.Middleware.AuthMiddleware(c.JWTService))

	fridge.Get("", c.FridgeHandler.GetFridge)
	fridge.Put("", c.FridgeHandler.ReplaceFridge)
	fridge.Post("", c.FridgeHandler.AddItem)
	fridge.Post("/batch", c.FridgeHandler.AddItems)
	fridge.Patch("/:id/amount", c.FridgeHandler.AdjustAmount)
	fridge.Patch("/:id/category", c.FridgeHandler.ReassignCategory)
	fridge.Delete("/:id", c.FridgeHandler.DeleteItem)

	// Receipt scanning
	fridge.Post("/receipt-scan", c.FridgeHandler.UploadReceipt)
	fridge.Get("/receipt-scan/:id", c.FridgeHandler.GetReceiptScan)
	fridge.Post("/save-scanned", c.FridgeHandler.SaveScannedItems)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Get("", c.ShoppingHandler.GetShoppingList)
	shopping.Post("", c.ShoppingHandler.AddItem)
	shopping.Post("/batch", c.ShoppingHandler.AddItems)
	shopping.Patch("/:id/toggle", c.ShoppingHandler.Toggle)
	shopping.Patch("/:id/amount", c.ShoppingHandler.AdjustAmount)
	shopping.Patch("/:id/category", c.ShoppingHandler.ReassignCategory)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteItem)
	shopping.Post("/clear-checked", c.ShoppingHandler.ClearChecked)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.ListRecipes)
	recipes.Get("/ingredients", c.RecipeHandler.GetIngredients)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	analytics.Get("/dashboard", c.AnalyticsHandler.GetDashboardStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
