package inventory

import (
	"strings"

	"github.com/google/uuid"

	"fridgetofeast/entities"
)

// Shopping amounts never drop to zero through the stepper; the list keeps
// a minimum of a quarter unit until the entry is deleted outright.
const MinShoppingAmount = 0.25

// ApplyShoppingDefaults mirrors ApplyDefaults for shopping entries.
func ApplyShoppingDefaults(item entities.ShoppingItem) entities.ShoppingItem {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		item.Name = PlaceholderName
	}
	if item.Amount <= 0 {
		item.Amount = entities.DefaultAmount
	}
	if !entities.ValidUnit(item.Unit) {
		item.Unit = entities.DefaultUnit
	}
	item.Category = CoerceCategory(item.Category)
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return item
}

// ToggleChecked flips the crossed-off flag. Unknown id is a no-op.
func ToggleChecked(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return items
		}
	}
	return items
}

// AdjustShoppingAmount applies a delta with the shopping floor. Unknown
// id is a no-op.
func AdjustShoppingAmount(items []entities.ShoppingItem, id uuid.UUID, delta float64) []entities.ShoppingItem {
	for i := range items {
		if items[i].ID == id {
			newAmount := items[i].Amount + delta
			if newAmount < MinShoppingAmount {
				newAmount = MinShoppingAmount
			}
			items[i].Amount = newAmount
			return items
		}
	}
	return items
}

// ReassignShoppingCategory moves an entry to a new category, coercing
// unknown categories to Other. Unknown id is a no-op.
func ReassignShoppingCategory(items []entities.ShoppingItem, id uuid.UUID, category string) []entities.ShoppingItem {
	for i := range items {
		if items[i].ID == id {
			items[i].Category = CoerceCategory(category)
			return items
		}
	}
	return items
}

// RemoveShoppingItem drops the entry with the given id. Unknown id is a
// no-op.
func RemoveShoppingItem(items []entities.ShoppingItem, id uuid.UUID) []entities.ShoppingItem {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// TransferChecked partitions the list by the checked flag. Checked
// entries leave the shopping list and are handed back for conversion
// into fridge items; ownership moves, nothing is duplicated.
func TransferChecked(items []entities.ShoppingItem) (remaining, transferred []entities.ShoppingItem) {
	remaining = make([]entities.ShoppingItem, 0, len(items))
	for _, item := range items {
		if item.Checked {
			transferred = append(transferred, item)
			continue
		}
		remaining = append(remaining, item)
	}
	return remaining, transferred
}
