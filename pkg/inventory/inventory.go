// Package inventory holds the pure reconciliation operations shared by the
// fridge and shopping services. Functions take the current item slice and
// return the updated one; persistence stays with the caller.
package inventory

import (
	"strings"

	"github.com/google/uuid"

	"fridgetofeast/entities"
	"fridgetofeast/pkg/matching"
)

// Entry-point defaults for days-until-expiry. Manual adds and
// shopping-list transfers use the longer window; receipt lines the
// shorter one, since the purchase usually predates the scan.
const (
	DefaultDaysLeftManual  = 7
	DefaultDaysLeftReceipt = 5

	PlaceholderName = "Unknown"
)

type AddResult struct {
	Added           bool
	AlreadyInFridge bool
	Item            *entities.InventoryItem
}

type BatchAddResult struct {
	AddedCount      int
	AlreadyInFridge []string
}

// CoerceCategory maps unrecognized category strings to Other.
func CoerceCategory(category string) string {
	if entities.ValidCategory(category) {
		return category
	}
	return entities.CategoryOther
}

// ApplyDefaults is the single place malformed or partial candidate data is
// repaired. It never fails: every field degrades to a usable default.
func ApplyDefaults(item entities.InventoryItem, defaultDaysLeft int) entities.InventoryItem {
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
	if item.DaysLeft <= 0 {
		item.DaysLeft = defaultDaysLeft
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return item
}

// AddItem merges one candidate into the inventory. A candidate whose name
// is similar to any existing entry is rejected without mutation and
// reported, not failed.
func AddItem(items []entities.InventoryItem, candidate entities.InventoryItem, defaultDaysLeft int) ([]entities.InventoryItem, AddResult) {
	candidate = ApplyDefaults(candidate, defaultDaysLeft)

	for _, existing := range items {
		if matching.IsSimilar(existing.Name, candidate.Name) {
			return items, AddResult{AlreadyInFridge: true}
		}
	}

	items = append(items, candidate)
	return items, AddResult{Added: true, Item: &candidate}
}

// AddItems merges a batch in input order. Each candidate is checked
// against the existing inventory and against earlier accepts from the
// same batch, so two near-duplicate receipt lines do not both land.
// Only inventory rejects are reported by name; in-batch rejects are
// dropped silently since the user already got one copy.
func AddItems(items []entities.InventoryItem, candidates []entities.InventoryItem, defaultDaysLeft int) ([]entities.InventoryItem, BatchAddResult) {
	result := BatchAddResult{AlreadyInFridge: []string{}}
	accepted := make([]entities.InventoryItem, 0, len(candidates))

	for _, raw := range candidates {
		candidate := ApplyDefaults(raw, defaultDaysLeft)

		inFridge := false
		for _, existing := range items {
			if matching.IsSimilar(existing.Name, candidate.Name) {
				inFridge = true
				break
			}
		}
		if inFridge {
			result.AlreadyInFridge = append(result.AlreadyInFridge, candidate.Name)
			continue
		}

		inBatch := false
		for _, earlier := range accepted {
			if matching.IsSimilar(earlier.Name, candidate.Name) {
				inBatch = true
				break
			}
		}
		if inBatch {
			continue
		}

		accepted = append(accepted, candidate)
	}

	result.AddedCount = len(accepted)
	return append(items, accepted...), result
}

// AdjustAmount applies a bounded delta to the item with the given id.
// An unknown id is a no-op; the target may have been removed by an
// earlier update. An amount that bottoms out at zero removes the item.
func AdjustAmount(items []entities.InventoryItem, id uuid.UUID, delta float64) []entities.InventoryItem {
	for i := range items {
		if items[i].ID != id {
			continue
		}
		newAmount := items[i].Amount + delta
		if newAmount <= 0 {
			return append(items[:i:i], items[i+1:]...)
		}
		items[i].Amount = newAmount
		return items
	}
	return items
}

// ReassignCategory moves the item with the given id to a new category,
// coercing unknown categories to Other. Unknown id is a no-op.
func ReassignCategory(items []entities.InventoryItem, id uuid.UUID, category string) []entities.InventoryItem {
	for i := range items {
		if items[i].ID == id {
			items[i].Category = CoerceCategory(category)
			return items
		}
	}
	return items
}

// RemoveItem drops the item with the given id. Unknown id is a no-op.
func RemoveItem(items []entities.InventoryItem, id uuid.UUID) []entities.InventoryItem {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// PruneExpired splits out items whose days-left reached zero; they count
// as consumed and leave the inventory.
func PruneExpired(items []entities.InventoryItem) (kept, removed []entities.InventoryItem) {
	kept = make([]entities.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.DaysLeft <= 0 {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
