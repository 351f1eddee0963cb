package fridge

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/pkg/inventory"
)

type memoryFridgeRepository struct {
	items map[string][]entities.InventoryItem
	scans map[string]*entities.ReceiptScan
}

func newMemoryFridgeRepository() *memoryFridgeRepository {
	return &memoryFridgeRepository{
		items: make(map[string][]entities.InventoryItem),
		scans: make(map[string]*entities.ReceiptScan),
	}
}

func (m *memoryFridgeRepository) GetItems(_ context.Context, userID string) ([]entities.InventoryItem, error) {
	return append([]entities.InventoryItem{}, m.items[userID]...), nil
}

func (m *memoryFridgeRepository) ReplaceItems(_ context.Context, userID string, items []entities.InventoryItem) error {
	m.items[userID] = append([]entities.InventoryItem{}, items...)
	return nil
}

func (m *memoryFridgeRepository) CreateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	m.scans[scan.ID.String()] = scan
	return nil
}

func (m *memoryFridgeRepository) GetReceiptScanByID(_ context.Context, id string) (*entities.ReceiptScan, error) {
	scan, ok := m.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return scan, nil
}

func (m *memoryFridgeRepository) UpdateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	m.scans[scan.ID.String()] = scan
	return nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName + ".jpg", nil
}

func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string { return link }

func TestAddItemRejectsSimilarName(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	first, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "Milk"}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	assert.True(t, first.Added)
	assert.Equal(t, float64(1), first.Item.Amount)
	assert.Equal(t, entities.DefaultUnit, first.Item.Unit)
	assert.Equal(t, inventory.DefaultDaysLeftManual, first.Item.DaysLeft)

	second, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "  milk "}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	assert.False(t, second.Added)
	assert.True(t, second.AlreadyInFridge)

	fridge, err := svc.GetFridge(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetFridge: %v", err)
	}
	assert.Len(t, fridge.Items, 1)
}

func TestAddItemsBatchDedup(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	resp, err := svc.AddItems(context.Background(), domain.BatchAddRequest{
		Items: []domain.ItemPayload{{Name: "Egg"}, {Name: "eggs"}, {Name: "Bread"}},
	}, userID)
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	assert.Equal(t, 2, resp.AddedCount)
	assert.Empty(t, resp.AlreadyInFridge)

	fridge, _ := svc.GetFridge(context.Background(), userID)
	assert.Len(t, fridge.Items, 2)
}

func TestAddItemsReportsInventoryConflicts(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	if _, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "Butter"}, userID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	resp, err := svc.AddItems(context.Background(), domain.BatchAddRequest{
		Items: []domain.ItemPayload{{Name: "butter"}, {Name: "Jam"}},
	}, userID)
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	assert.Equal(t, 1, resp.AddedCount)
	assert.Equal(t, []string{"butter"}, resp.AlreadyInFridge)
}

func TestGetFridgePrunesExpired(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()
	userUUID := uuid.MustParse(userID)

	repo.items[userID] = []entities.InventoryItem{
		{ID: uuid.New(), UserID: userUUID, Name: "Old Yogurt", Amount: 1, Unit: "count", DaysLeft: 0, Category: entities.CategoryDairy},
		{ID: uuid.New(), UserID: userUUID, Name: "Apples", Amount: 3, Unit: "count", DaysLeft: 5, Category: entities.CategoryProduce},
	}

	fridge, err := svc.GetFridge(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetFridge: %v", err)
	}
	assert.Len(t, fridge.Items, 1)
	assert.Equal(t, "Apples", fridge.Items[0].Name)

	// pruned snapshot got written back
	assert.Len(t, repo.items[userID], 1)
}

func TestAdjustAmountRemovesAtZero(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	added, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "Cheese", Amount: 1}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	fridge, err := svc.AdjustAmount(context.Background(), added.Item.ID, -1, userID)
	if err != nil {
		t.Fatalf("AdjustAmount: %v", err)
	}
	assert.Empty(t, fridge.Items)
}

func TestAdjustAmountUnknownIDIsNoOp(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	if _, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "Rice"}, userID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	fridge, err := svc.AdjustAmount(context.Background(), uuid.NewString(), -5, userID)
	if err != nil {
		t.Fatalf("AdjustAmount: %v", err)
	}
	assert.Len(t, fridge.Items, 1)
	assert.Equal(t, float64(1), fridge.Items[0].Amount)
}

func TestReassignCategoryCoercesUnknown(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()

	added, err := svc.AddItem(context.Background(), domain.ItemPayload{Name: "Salmon", Category: entities.CategoryProtein}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	fridge, err := svc.ReassignCategory(context.Background(), added.Item.ID, "Seafood", userID)
	if err != nil {
		t.Fatalf("ReassignCategory: %v", err)
	}
	assert.Equal(t, entities.CategoryOther, fridge.Items[0].Category)
}

func TestSaveScannedItemsMergesWithReceiptDefaults(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()
	userUUID := uuid.MustParse(userID)

	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: userUUID, Status: "Processed"}
	if err := repo.CreateReceiptScan(context.Background(), scan); err != nil {
		t.Fatalf("CreateReceiptScan: %v", err)
	}

	resp, err := svc.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items:  []domain.ItemPayload{{Name: "Tomatoes"}, {Name: "Pasta"}},
	}, userID)
	if err != nil {
		t.Fatalf("SaveScannedItems: %v", err)
	}

	assert.Equal(t, 2, resp.AddedCount)
	assert.Equal(t, "Completed", repo.scans[scan.ID.String()].Status)

	fridge, _ := svc.GetFridge(context.Background(), userID)
	for _, item := range fridge.Items {
		assert.Equal(t, inventory.DefaultDaysLeftReceipt, item.DaysLeft)
	}
}

func TestSaveScannedItemsWrongUser(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})

	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.New(), Status: "Processed"}
	if err := repo.CreateReceiptScan(context.Background(), scan); err != nil {
		t.Fatalf("CreateReceiptScan: %v", err)
	}

	_, err := svc.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items:  []domain.ItemPayload{{Name: "Tomatoes"}},
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetReceiptScanParsesResults(t *testing.T) {
	repo := newMemoryFridgeRepository()
	svc := NewFridgeService(repo, fakeS3{})
	userID := uuid.NewString()
	userUUID := uuid.MustParse(userID)

	results, _ := json.Marshal([]domain.ItemPayload{{Name: "Bananas", Amount: 6}})
	scan := &entities.ReceiptScan{
		ID:         uuid.New(),
		UserID:     userUUID,
		Status:     "Processed",
		OcrResults: string(results),
	}
	if err := repo.CreateReceiptScan(context.Background(), scan); err != nil {
		t.Fatalf("CreateReceiptScan: %v", err)
	}

	resp, err := svc.GetReceiptScan(context.Background(), scan.ID.String(), userID)
	if err != nil {
		t.Fatalf("GetReceiptScan: %v", err)
	}
	assert.Equal(t, "Processed", resp.Status)
	if assert.Len(t, resp.Items, 1) {
		assert.Equal(t, "Bananas", resp.Items[0].Name)
	}
}
