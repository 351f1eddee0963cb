package domain

var (
	MessageSuccessGetShoppingList  = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem  = "item added to shopping list"
	MessageSuccessToggleItem       = "item toggled"
	MessageSuccessUpdateQuantity   = "item quantity updated"
	MessageSuccessUpdateCategory   = "item category updated"
	MessageSuccessDeleteShopping   = "item removed from shopping list"
	MessageSuccessClearChecked     = "checked items moved to fridge"
	MessageSuccessBatchAddShopping = "items added to shopping list"

	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem  = "failed to add item to shopping list"
	MessageFailedToggleItem       = "failed to toggle item"
	MessageFailedUpdateQuantity   = "failed to update item quantity"
	MessageFailedUpdateCategory   = "failed to update item category"
	MessageFailedDeleteShopping   = "failed to remove item from shopping list"
	MessageFailedClearChecked     = "failed to move checked items to fridge"
	MessageFailedBatchAddShopping = "failed to add items to shopping list"
)

type (
	AddShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Amount   float64 `json:"amount" validate:"omitempty,gte=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
		Category string  `json:"category" validate:"omitempty"`
	}

	BatchAddShoppingRequest struct {
		Items []ItemPayload `json:"items" validate:"required,min=1,dive"`
	}

	ShoppingItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Category string  `json:"category"`
		Checked  bool    `json:"checked"`
	}

	// ShoppingListResponse groups entries by category the way the
	// client renders them; Items keeps the flat list.
	ShoppingListResponse struct {
		Items      []ShoppingItemResponse            `json:"items"`
		Categories map[string][]ShoppingItemResponse `json:"categories"`
	}

	ClearCheckedResponse struct {
		TransferredCount int      `json:"transferred_count"`
		AlreadyInFridge  []string `json:"already_in_fridge"`
	}
)
