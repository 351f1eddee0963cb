package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetFridge        = "fridge retrieved successfully"
	MessageSuccessReplaceFridge    = "fridge updated successfully"
	MessageSuccessAddItem          = "item added to fridge"
	MessageSuccessBatchAdd         = "items merged into fridge"
	MessageSuccessAdjustAmount     = "item amount updated"
	MessageSuccessReassignCategory = "item category updated"
	MessageSuccessDeleteItem       = "item removed from fridge"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessGetReceiptScan   = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"

	MessageFailedGetFridge        = "failed to retrieve fridge"
	MessageFailedReplaceFridge    = "failed to update fridge"
	MessageFailedAddItem          = "failed to add item to fridge"
	MessageFailedBatchAdd         = "failed to merge items into fridge"
	MessageFailedAdjustAmount     = "failed to update item amount"
	MessageFailedReassignCategory = "failed to update item category"
	MessageFailedDeleteItem       = "failed to remove item from fridge"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedGetReceiptScan   = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems = "failed to save scanned items"

	MessageItemAlreadyInFridge = "a similar item is already in the fridge"

	ErrInvalidReceiptScan = errors.New("invalid receipt scan ID")
	ErrReceiptNotReady    = errors.New("receipt scan is not processed yet")
)

type (
	// ItemPayload is the wire shape of a single fridge or shopping item.
	// Every field except the name is optional; missing values fall back
	// to the defaults applied by the inventory core.
	ItemPayload struct {
		ID       string  `json:"id" validate:"omitempty"`
		Name     string  `json:"name" validate:"omitempty"`
		Amount   float64 `json:"amount" validate:"omitempty,gte=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
		DaysLeft int     `json:"days_left" validate:"omitempty,gte=0"`
		Category string  `json:"category" validate:"omitempty"`
	}

	ReplaceFridgeRequest struct {
		Items []ItemPayload `json:"items" validate:"required"`
	}

	BatchAddRequest struct {
		Items []ItemPayload `json:"items" validate:"required,min=1,dive"`
	}

	AdjustAmountRequest struct {
		Delta float64 `json:"delta" validate:"required"`
	}

	ReassignCategoryRequest struct {
		Category string `json:"category" validate:"required"`
	}

	InventoryItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		DaysLeft int     `json:"days_left"`
		Category string  `json:"category"`
	}

	FridgeResponse struct {
		Items []InventoryItemResponse `json:"items"`
	}

	AddItemResponse struct {
		Added           bool                   `json:"added"`
		AlreadyInFridge bool                   `json:"already_in_fridge"`
		Item            *InventoryItemResponse `json:"item,omitempty"`
	}

	BatchAddResponse struct {
		AddedCount      int      `json:"added_count"`
		AlreadyInFridge []string `json:"already_in_fridge"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url"`
		Status   string        `json:"status"`
		Items    []ItemPayload `json:"items,omitempty"`
	}

	SaveScannedItemsRequest struct {
		ScanID string        `json:"scan_id" validate:"required,uuid"`
		Items  []ItemPayload `json:"items" validate:"required,min=1,dive"`
	}
)
