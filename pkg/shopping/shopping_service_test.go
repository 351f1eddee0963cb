package shopping

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/pkg/fridge"
	"fridgetofeast/pkg/inventory"
)

type memoryShoppingRepository struct {
	items map[string][]entities.ShoppingItem
}

func newMemoryShoppingRepository() *memoryShoppingRepository {
	return &memoryShoppingRepository{items: make(map[string][]entities.ShoppingItem)}
}

func (m *memoryShoppingRepository) GetItems(_ context.Context, userID string) ([]entities.ShoppingItem, error) {
	return append([]entities.ShoppingItem{}, m.items[userID]...), nil
}

func (m *memoryShoppingRepository) ReplaceItems(_ context.Context, userID string, items []entities.ShoppingItem) error {
	m.items[userID] = append([]entities.ShoppingItem{}, items...)
	return nil
}

type memoryFridgeRepository struct {
	items map[string][]entities.InventoryItem
}

func newMemoryFridgeRepository() *memoryFridgeRepository {
	return &memoryFridgeRepository{items: make(map[string][]entities.InventoryItem)}
}

func (m *memoryFridgeRepository) GetItems(_ context.Context, userID string) ([]entities.InventoryItem, error) {
	return append([]entities.InventoryItem{}, m.items[userID]...), nil
}

func (m *memoryFridgeRepository) ReplaceItems(_ context.Context, userID string, items []entities.InventoryItem) error {
	m.items[userID] = append([]entities.InventoryItem{}, items...)
	return nil
}

func (m *memoryFridgeRepository) CreateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

func (m *memoryFridgeRepository) GetReceiptScanByID(_ context.Context, _ string) (*entities.ReceiptScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryFridgeRepository) UpdateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

type noopS3 struct{}

func (noopS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (noopS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (noopS3) DeleteFile(string) error { return nil }

func (noopS3) GetPublicLinkKey(objectKey string) string { return objectKey }

func (noopS3) GetObjectKeyFromLink(link string) string { return link }

func newTestServices() (ShoppingService, *memoryShoppingRepository, *memoryFridgeRepository) {
	shoppingRepo := newMemoryShoppingRepository()
	fridgeRepo := newMemoryFridgeRepository()
	fridgeService := fridge.NewFridgeService(fridgeRepo, noopS3{})
	return NewShoppingService(shoppingRepo, fridgeService), shoppingRepo, fridgeRepo
}

func TestAddItemAppliesShoppingDefaults(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "  "}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}

	item := resp.Items[0]
	assert.Equal(t, inventory.PlaceholderName, item.Name)
	assert.Equal(t, float64(1), item.Amount)
	assert.Equal(t, entities.DefaultUnit, item.Unit)
	assert.Equal(t, entities.CategoryOther, item.Category)
	assert.False(t, item.Checked)
}

func TestShoppingListAllowsDuplicates(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	if _, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Milk"}, userID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "milk"}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	assert.Len(t, resp.Items, 2)
}

func TestAdjustAmountFloorsAtQuarter(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Flour", Amount: 1}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := resp.Items[0].ID

	resp, err = svc.AdjustAmount(context.Background(), itemID, -5, userID)
	if err != nil {
		t.Fatalf("AdjustAmount: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("shopping entries are never removed by adjustment, got %d items", len(resp.Items))
	}
	assert.Equal(t, inventory.MinShoppingAmount, resp.Items[0].Amount)
}

func TestToggleFlipsChecked(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Beans"}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := resp.Items[0].ID

	resp, err = svc.Toggle(context.Background(), itemID, userID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	assert.True(t, resp.Items[0].Checked)

	resp, err = svc.Toggle(context.Background(), itemID, userID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	assert.False(t, resp.Items[0].Checked)
}

func TestClearCheckedTransfersToFridge(t *testing.T) {
	svc, shoppingRepo, fridgeRepo := newTestServices()
	userID := uuid.NewString()

	for _, name := range []string{"Milk", "Bread", "Apples"} {
		if _, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: name}, userID); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	list, _ := svc.GetShoppingList(context.Background(), userID)
	for _, item := range list.Items[:2] {
		if _, err := svc.Toggle(context.Background(), item.ID, userID); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}

	resp, err := svc.ClearChecked(context.Background(), userID)
	if err != nil {
		t.Fatalf("ClearChecked: %v", err)
	}

	assert.Equal(t, 2, resp.TransferredCount)
	assert.Empty(t, resp.AlreadyInFridge)
	assert.Len(t, shoppingRepo.items[userID], 1)
	assert.Equal(t, "Apples", shoppingRepo.items[userID][0].Name)

	fridgeItems := fridgeRepo.items[userID]
	if assert.Len(t, fridgeItems, 2) {
		assert.Equal(t, inventory.DefaultDaysLeftManual, fridgeItems[0].DaysLeft)
	}
}

func TestClearCheckedReportsFridgeConflicts(t *testing.T) {
	svc, shoppingRepo, fridgeRepo := newTestServices()
	userID := uuid.NewString()
	userUUID := uuid.MustParse(userID)

	fridgeRepo.items[userID] = []entities.InventoryItem{
		{ID: uuid.New(), UserID: userUUID, Name: "Milk", Amount: 1, Unit: "count", DaysLeft: 3, Category: entities.CategoryDairy},
	}

	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "milk"}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), resp.Items[0].ID, userID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	cleared, err := svc.ClearChecked(context.Background(), userID)
	if err != nil {
		t.Fatalf("ClearChecked: %v", err)
	}

	assert.Equal(t, 0, cleared.TransferredCount)
	assert.Equal(t, []string{"milk"}, cleared.AlreadyInFridge)
	// the checked entry leaves the list even when the fridge rejects it
	assert.Empty(t, shoppingRepo.items[userID])
	assert.Len(t, fridgeRepo.items[userID], 1)
}

func TestClearCheckedNothingChecked(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	if _, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Rice"}, userID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	resp, err := svc.ClearChecked(context.Background(), userID)
	if err != nil {
		t.Fatalf("ClearChecked: %v", err)
	}
	assert.Equal(t, 0, resp.TransferredCount)
	assert.Empty(t, resp.AlreadyInFridge)
}

func TestCategoriesGroupingFallsBackToOther(t *testing.T) {
	svc, _, _ := newTestServices()
	userID := uuid.NewString()

	resp, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Chicken", Category: entities.CategoryProtein}, userID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	assert.Len(t, resp.Categories[entities.CategoryProtein], 1)
	for _, c := range entities.Categories {
		if c != entities.CategoryProtein {
			assert.Empty(t, resp.Categories[c])
		}
	}
}
