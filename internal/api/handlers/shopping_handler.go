package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fridgetofeast/domain"
	"fridgetofeast/internal/api/presenters"
	"fridgetofeast/pkg/shopping"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		AddItems(c *fiber.Ctx) error
		Toggle(c *fiber.Ctx) error
		AdjustAmount(c *fiber.Ctx) error
		ReassignCategory(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		ClearChecked(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GetShoppingList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) AddItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BatchAddShoppingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchAddShopping, err)
	}

	res, err := h.shoppingService.AddItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchAddShopping, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessBatchAddShopping)
}

func (h *shoppingHandler) Toggle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.shoppingService.Toggle(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleItem)
}

func (h *shoppingHandler) AdjustAmount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.AdjustAmountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuantity, err)
	}

	res, err := h.shoppingService.AdjustAmount(c.Context(), itemID, req.Delta, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQuantity)
}

func (h *shoppingHandler) ReassignCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ReassignCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.shoppingService.ReassignCategory(c.Context(), itemID, req.Category, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *shoppingHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.shoppingService.DeleteItem(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShopping, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteShopping)
}

func (h *shoppingHandler) ClearChecked(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.ClearChecked(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearChecked, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearChecked)
}
