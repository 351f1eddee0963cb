package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fridgetofeast/domain"
	"fridgetofeast/internal/api/presenters"
	"fridgetofeast/pkg/fridge"
)

type (
	FridgeHandler interface {
		GetFridge(c *fiber.Ctx) error
		ReplaceFridge(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		AddItems(c *fiber.Ctx) error
		AdjustAmount(c *fiber.Ctx) error
		ReassignCategory(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetReceiptScan(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) GetFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fridgeService.GetFridge(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFridge)
}

func (h *fridgeHandler) ReplaceFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ReplaceFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceFridge, err)
	}

	res, err := h.fridgeService.ReplaceFridge(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplaceFridge)
}

func (h *fridgeHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ItemPayload)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.fridgeService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	if !res.Added {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageItemAlreadyInFridge)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *fridgeHandler) AddItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BatchAddRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchAdd, err)
	}

	res, err := h.fridgeService.AddItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchAdd, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBatchAdd)
}

func (h *fridgeHandler) AdjustAmount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.AdjustAmountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustAmount, err)
	}

	res, err := h.fridgeService.AdjustAmount(c.Context(), itemID, req.Delta, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustAmount, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdjustAmount)
}

func (h *fridgeHandler) ReassignCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ReassignCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReassignCategory, err)
	}

	res, err := h.fridgeService.ReassignCategory(c.Context(), itemID, req.Category, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReassignCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReassignCategory)
}

func (h *fridgeHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.fridgeService.DeleteItem(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *fridgeHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.fridgeService.UploadReceipt(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessUploadReceipt)
}

func (h *fridgeHandler) GetReceiptScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.fridgeService.GetReceiptScan(c.Context(), scanID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceiptScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptScan)
}

func (h *fridgeHandler) SaveScannedItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	res, err := h.fridgeService.SaveScannedItems(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveScannedItems)
}
