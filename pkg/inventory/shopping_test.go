package inventory

import (
	"testing"

	"github.com/google/uuid"

	"fridgetofeast/entities"
)

func entry(name string, checked bool) entities.ShoppingItem {
	return entities.ShoppingItem{ID: uuid.New(), Name: name, Amount: 1, Unit: "count", Category: "Other", Checked: checked}
}

func TestTransferChecked(t *testing.T) {
	milk := entry("Milk", true)
	bread := entry("Bread", false)
	eggs := entry("Eggs", true)

	remaining, transferred := TransferChecked([]entities.ShoppingItem{milk, bread, eggs})

	if len(remaining) != 1 || remaining[0].ID != bread.ID {
		t.Errorf("remaining = %+v, want only Bread", remaining)
	}
	if len(transferred) != 2 {
		t.Fatalf("transferred %d entries, want 2", len(transferred))
	}
	if transferred[0].ID != milk.ID || transferred[1].ID != eggs.ID {
		t.Errorf("transferred order = %+v, want Milk then Eggs", transferred)
	}
}

func TestTransferCheckedNothingChecked(t *testing.T) {
	items := []entities.ShoppingItem{entry("Milk", false)}
	remaining, transferred := TransferChecked(items)
	if len(remaining) != 1 || len(transferred) != 0 {
		t.Errorf("remaining=%d transferred=%d, want 1/0", len(remaining), len(transferred))
	}
}

func TestToggleChecked(t *testing.T) {
	e := entry("Milk", false)
	items := ToggleChecked([]entities.ShoppingItem{e}, e.ID)
	if !items[0].Checked {
		t.Error("toggle did not check the entry")
	}
	items = ToggleChecked(items, e.ID)
	if items[0].Checked {
		t.Error("second toggle did not uncheck the entry")
	}
}

func TestAdjustShoppingAmountFloor(t *testing.T) {
	e := entry("Milk", false)
	items := AdjustShoppingAmount([]entities.ShoppingItem{e}, e.ID, -5)
	if items[0].Amount != MinShoppingAmount {
		t.Errorf("amount = %v, want floor %v", items[0].Amount, MinShoppingAmount)
	}
	if len(items) != 1 {
		t.Error("shopping entry removed by amount stepper")
	}
}

func TestShoppingOpsUnknownIDNoop(t *testing.T) {
	e := entry("Milk", false)
	items := []entities.ShoppingItem{e}

	items = ToggleChecked(items, uuid.New())
	items = AdjustShoppingAmount(items, uuid.New(), 1)
	items = ReassignShoppingCategory(items, uuid.New(), "Dairy")
	items = RemoveShoppingItem(items, uuid.New())

	if len(items) != 1 || items[0] != e {
		t.Errorf("entry changed by unknown-id ops: %+v", items)
	}
}
