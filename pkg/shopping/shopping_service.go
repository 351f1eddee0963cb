package shopping

import (
	"context"

	"github.com/google/uuid"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/pkg/fridge"
	"fridgetofeast/pkg/inventory"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, userID string) (domain.ShoppingListResponse, error)
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListResponse, error)
		AddItems(ctx context.Context, req domain.BatchAddShoppingRequest, userID string) (domain.ShoppingListResponse, error)
		Toggle(ctx context.Context, itemID string, userID string) (domain.ShoppingListResponse, error)
		AdjustAmount(ctx context.Context, itemID string, delta float64, userID string) (domain.ShoppingListResponse, error)
		ReassignCategory(ctx context.Context, itemID string, category string, userID string) (domain.ShoppingListResponse, error)
		DeleteItem(ctx context.Context, itemID string, userID string) (domain.ShoppingListResponse, error)
		ClearChecked(ctx context.Context, userID string) (domain.ClearCheckedResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		fridgeService      fridge.FridgeService
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, fridgeService fridge.FridgeService) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		fridgeService:      fridgeService,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, userID string) (domain.ShoppingListResponse, error) {
	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(items), nil
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	entry := inventory.ApplyShoppingDefaults(entities.ShoppingItem{
		Name:     req.Name,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Category: req.Category,
	})
	entry.UserID = userUUID
	items = append(items, entry)

	if err := s.shoppingRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(items), nil
}

func (s *shoppingService) AddItems(ctx context.Context, req domain.BatchAddShoppingRequest, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	for _, payload := range req.Items {
		entry := inventory.ApplyShoppingDefaults(entities.ShoppingItem{
			Name:     payload.Name,
			Amount:   payload.Amount,
			Unit:     payload.Unit,
			Category: payload.Category,
		})
		entry.UserID = userUUID
		items = append(items, entry)
	}

	if err := s.shoppingRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(items), nil
}

func (s *shoppingService) Toggle(ctx context.Context, itemID string, userID string) (domain.ShoppingListResponse, error) {
	return s.update(ctx, userID, itemID, func(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
		return inventory.ToggleChecked(items, id)
	})
}

func (s *shoppingService) AdjustAmount(ctx context.Context, itemID string, delta float64, userID string) (domain.ShoppingListResponse, error) {
	return s.update(ctx, userID, itemID, func(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
		return inventory.AdjustShoppingAmount(items, id, delta)
	})
}

func (s *shoppingService) ReassignCategory(ctx context.Context, itemID string, category string, userID string) (domain.ShoppingListResponse, error) {
	return s.update(ctx, userID, itemID, func(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
		return inventory.ReassignShoppingCategory(items, id, category)
	})
}

func (s *shoppingService) DeleteItem(ctx context.Context, itemID string, userID string) (domain.ShoppingListResponse, error) {
	return s.update(ctx, userID, itemID, func(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
		return inventory.RemoveShoppingItem(items, id)
	})
}

func (s *shoppingService) update(ctx context.Context, userID, itemID string, op func([]entities.ShoppingItem, uuid.UUID) []entities.ShoppingItem) (domain.ShoppingListResponse, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	items = op(items, itemUUID)
	if err := s.shoppingRepository.ReplaceItems(ctx, userID, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(items), nil
}

// ClearChecked moves crossed-off entries into the fridge. The partition
// is pure; the fridge merge applies the usual dedup, so a checked entry
// whose double is already in the fridge is dropped there and reported.
func (s *shoppingService) ClearChecked(ctx context.Context, userID string) (domain.ClearCheckedResponse, error) {
	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ClearCheckedResponse{}, err
	}

	remaining, transferred := inventory.TransferChecked(items)
	if len(transferred) == 0 {
		return domain.ClearCheckedResponse{AlreadyInFridge: []string{}}, nil
	}

	candidates := make([]entities.InventoryItem, 0, len(transferred))
	for _, entry := range transferred {
		candidates = append(candidates, entities.InventoryItem{
			Name:     entry.Name,
			Amount:   entry.Amount,
			Unit:     entry.Unit,
			Category: entry.Category,
		})
	}

	merge, err := s.fridgeService.MergeItems(ctx, candidates, inventory.DefaultDaysLeftManual, userID)
	if err != nil {
		return domain.ClearCheckedResponse{}, err
	}

	if err := s.shoppingRepository.ReplaceItems(ctx, userID, remaining); err != nil {
		return domain.ClearCheckedResponse{}, err
	}

	return domain.ClearCheckedResponse{
		TransferredCount: merge.AddedCount,
		AlreadyInFridge:  merge.AlreadyInFridge,
	}, nil
}

func toListResponse(items []entities.ShoppingItem) domain.ShoppingListResponse {
	resp := domain.ShoppingListResponse{
		Items:      make([]domain.ShoppingItemResponse, 0, len(items)),
		Categories: make(map[string][]domain.ShoppingItemResponse),
	}
	for _, c := range entities.Categories {
		resp.Categories[c] = []domain.ShoppingItemResponse{}
	}

	for _, item := range items {
		r := domain.ShoppingItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Amount:   item.Amount,
			Unit:     item.Unit,
			Category: item.Category,
			Checked:  item.Checked,
		}
		resp.Items = append(resp.Items, r)

		cat := item.Category
		if _, ok := resp.Categories[cat]; !ok {
			cat = entities.CategoryOther
		}
		resp.Categories[cat] = append(resp.Categories[cat], r)
	}
	return resp
}
