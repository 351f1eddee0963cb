package fridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/internal/utils"
	"fridgetofeast/internal/utils/storage"
	"fridgetofeast/pkg/inventory"
)

type (
	FridgeService interface {
		GetFridge(ctx context.Context, userID string) (domain.FridgeResponse, error)
		ReplaceFridge(ctx context.Context, req domain.ReplaceFridgeRequest, userID string) (domain.FridgeResponse, error)
		AddItem(ctx context.Context, req domain.ItemPayload, userID string) (domain.AddItemResponse, error)
		AddItems(ctx context.Context, req domain.BatchAddRequest, userID string) (domain.BatchAddResponse, error)
		MergeItems(ctx context.Context, candidates []entities.InventoryItem, defaultDaysLeft int, userID string) (domain.BatchAddResponse, error)
		AdjustAmount(ctx context.Context, itemID string, delta float64, userID string) (domain.FridgeResponse, error)
		ReassignCategory(ctx context.Context, itemID string, category string, userID string) (domain.FridgeResponse, error)
		DeleteItem(ctx context.Context, itemID string, userID string) (domain.FridgeResponse, error)

		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) (domain.BatchAddResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
		s3               storage.AwsS3
	}
)

func NewFridgeService(fridgeRepository FridgeRepository, s3 storage.AwsS3) FridgeService {
	return &fridgeService{
		fridgeRepository: fridgeRepository,
		s3:               s3,
	}
}

// loadItems fetches the user's snapshot and drops entries whose expiry
// counted down to zero; the pruned snapshot is written back only when
// something actually expired.
func (s *fridgeService) loadItems(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	items, err := s.fridgeRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept, removed := inventory.PruneExpired(items)
	if len(removed) > 0 {
		if err := s.fridgeRepository.ReplaceItems(ctx, userID, kept); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

func (s *fridgeService) GetFridge(ctx context.Context, userID string) (domain.FridgeResponse, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(items), nil
}

func (s *fridgeService) ReplaceFridge(ctx context.Context, req domain.ReplaceFridgeRequest, userID string) (domain.FridgeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	items := make([]entities.InventoryItem, 0, len(req.Items))
	for _, payload := range req.Items {
		item := inventory.ApplyDefaults(payloadToItem(payload), inventory.DefaultDaysLeftManual)
		item.UserID = userUUID
		items = append(items, item)
	}

	if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(items), nil
}

func (s *fridgeService) AddItem(ctx context.Context, req domain.ItemPayload, userID string) (domain.AddItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddItemResponse{}, domain.ErrParseUUID
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.AddItemResponse{}, err
	}

	candidate := payloadToItem(req)
	candidate.AddedManually = true

	items, result := inventory.AddItem(items, candidate, inventory.DefaultDaysLeftManual)
	if !result.Added {
		return domain.AddItemResponse{AlreadyInFridge: true}, nil
	}

	result.Item.UserID = userUUID
	items[len(items)-1].UserID = userUUID

	if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.AddItemResponse{}, err
	}

	resp := itemToResponse(*result.Item)
	return domain.AddItemResponse{Added: true, Item: &resp}, nil
}

func (s *fridgeService) AddItems(ctx context.Context, req domain.BatchAddRequest, userID string) (domain.BatchAddResponse, error) {
	candidates := make([]entities.InventoryItem, 0, len(req.Items))
	for _, payload := range req.Items {
		candidate := payloadToItem(payload)
		candidate.AddedManually = true
		candidates = append(candidates, candidate)
	}
	return s.MergeItems(ctx, candidates, inventory.DefaultDaysLeftManual, userID)
}

// MergeItems runs the batch dedup merge and persists the result. It is
// shared by manual batch adds, receipt imports, and the shopping-list
// transfer.
func (s *fridgeService) MergeItems(ctx context.Context, candidates []entities.InventoryItem, defaultDaysLeft int, userID string) (domain.BatchAddResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BatchAddResponse{}, domain.ErrParseUUID
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.BatchAddResponse{}, err
	}

	items, result := inventory.AddItems(items, candidates, defaultDaysLeft)
	for i := range items {
		items[i].UserID = userUUID
	}

	if result.AddedCount > 0 {
		if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
			return domain.BatchAddResponse{}, err
		}
	}

	return domain.BatchAddResponse{
		AddedCount:      result.AddedCount,
		AlreadyInFridge: result.AlreadyInFridge,
	}, nil
}

func (s *fridgeService) AdjustAmount(ctx context.Context, itemID string, delta float64, userID string) (domain.FridgeResponse, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.FridgeResponse{}, err
	}

	items = inventory.AdjustAmount(items, itemUUID, delta)
	if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(items), nil
}

func (s *fridgeService) ReassignCategory(ctx context.Context, itemID string, category string, userID string) (domain.FridgeResponse, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.FridgeResponse{}, err
	}

	items = inventory.ReassignCategory(items, itemUUID, category)
	if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(items), nil
}

func (s *fridgeService) DeleteItem(ctx context.Context, itemID string, userID string) (domain.FridgeResponse, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return domain.FridgeResponse{}, err
	}

	items = inventory.RemoveItem(items, itemUUID)
	if err := s.fridgeRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(items), nil
}

func (s *fridgeService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	receiptScan := &entities.ReceiptScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   "Pending",
	}

	if err := s.fridgeRepository.CreateReceiptScan(ctx, receiptScan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceipt(receiptScan, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

// processReceipt posts the image to the external parser service and
// stores whatever line items come back. Failures land on the scan row
// so the client can surface them.
func (s *fridgeService) processReceipt(scan *entities.ReceiptScan, image *multipart.FileHeader) {
	fail := func(format string, args ...any) {
		scan.Status = "Failed"
		scan.OcrResults = fmt.Sprintf(format, args...)
		if err := s.fridgeRepository.UpdateReceiptScan(context.Background(), scan); err != nil {
			log.Printf("Error updating receipt scan: %v", err)
		}
	}

	parserURL := utils.GetConfig("RECEIPT_PARSER_URL")
	if parserURL == "" {
		fail("Error: receipt parser URL not configured")
		return
	}

	file, err := image.Open()
	if err != nil {
		fail("Error opening file: %s", err.Error())
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		fail("Error reading file: %s", err.Error())
		return
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		fail("Error creating form file: %s", err.Error())
		return
	}
	if _, err = part.Write(fileBytes); err != nil {
		fail("Error writing to form file: %s", err.Error())
		return
	}
	if err = writer.Close(); err != nil {
		fail("Error closing writer: %s", err.Error())
		return
	}

	httpReq, err := http.NewRequest("POST", parserURL, body)
	if err != nil {
		fail("Error creating request: %s", err.Error())
		return
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fail("Error sending request to receipt parser: %s", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		fail("Receipt parser error: %s - %s", resp.Status, string(bodyBytes))
		return
	}

	var parserResponse struct {
		Success bool                 `json:"success"`
		Items   []domain.ItemPayload `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parserResponse); err != nil {
		fail("Error parsing receipt parser response: %s", err.Error())
		return
	}

	if !parserResponse.Success || len(parserResponse.Items) == 0 {
		fail("Receipt parser couldn't extract any items from receipt")
		return
	}

	resultsJSON, _ := json.Marshal(parserResponse.Items)
	scan.Status = "Processed"
	scan.OcrResults = string(resultsJSON)

	if err := s.fridgeRepository.UpdateReceiptScan(context.Background(), scan); err != nil {
		log.Printf("Error updating receipt scan: %v", err)
	}
}

func (s *fridgeService) GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.fridgeRepository.GetReceiptScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrInvalidReceiptScan
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ReceiptScanResponse{}, domain.ErrUserNotAllowed
	}

	resp := domain.ReceiptScanResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
	}

	if scan.Status == "Processed" || scan.Status == "Completed" {
		var items []domain.ItemPayload
		if err := json.Unmarshal([]byte(scan.OcrResults), &items); err == nil {
			resp.Items = items
		}
	}

	return resp, nil
}

func (s *fridgeService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) (domain.BatchAddResponse, error) {
	scan, err := s.fridgeRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchAddResponse{}, domain.ErrInvalidReceiptScan
		}
		return domain.BatchAddResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.BatchAddResponse{}, domain.ErrUserNotAllowed
	}

	scanIDStr := scan.ID.String()
	candidates := make([]entities.InventoryItem, 0, len(req.Items))
	for _, payload := range req.Items {
		candidate := payloadToItem(payload)
		candidate.ReceiptScanID = &scanIDStr
		candidates = append(candidates, candidate)
	}

	result, err := s.MergeItems(ctx, candidates, inventory.DefaultDaysLeftReceipt, userID)
	if err != nil {
		return domain.BatchAddResponse{}, err
	}

	scan.Status = "Completed"
	if err := s.fridgeRepository.UpdateReceiptScan(ctx, scan); err != nil {
		return domain.BatchAddResponse{}, err
	}

	return result, nil
}

func payloadToItem(payload domain.ItemPayload) entities.InventoryItem {
	item := entities.InventoryItem{
		Name:     payload.Name,
		Amount:   payload.Amount,
		Unit:     payload.Unit,
		DaysLeft: payload.DaysLeft,
		Category: payload.Category,
	}
	if id, err := uuid.Parse(payload.ID); err == nil {
		item.ID = id
	}
	return item
}

func itemToResponse(item entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Amount:   item.Amount,
		Unit:     item.Unit,
		DaysLeft: item.DaysLeft,
		Category: item.Category,
	}
}

func toFridgeResponse(items []entities.InventoryItem) domain.FridgeResponse {
	resp := domain.FridgeResponse{Items: make([]domain.InventoryItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, itemToResponse(item))
	}
	return resp
}
