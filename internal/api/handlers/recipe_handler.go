package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fridgetofeast/domain"
	"fridgetofeast/internal/api/presenters"
	"fridgetofeast/pkg/recipe"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	maxTime, err := strconv.Atoi(c.Query("max_time", "0"))
	if err != nil || maxTime < 0 {
		maxTime = 0
	}
	limit, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}

	query := domain.ListRecipesQuery{
		Query:   c.Query("q"),
		Tag:     c.Query("tag"),
		MaxTime: maxTime,
		Limit:   limit,
	}

	res, err := h.recipeService.ListRecipes(c.Context(), query, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipe(c.Context(), recipeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.recipeService.GetIngredients(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}
