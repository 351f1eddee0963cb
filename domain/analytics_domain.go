package domain

var (
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageFailedGetDashboardStats  = "failed to retrieve dashboard statistics"
)

type DashboardStatsResponse struct {
	TotalItems      int            `json:"total_items"`
	ExpiringSoon    int            `json:"expiring_soon"`
	ByCategory      map[string]int `json:"by_category"`
	ShoppingItems   int            `json:"shopping_items"`
	CheckedItems    int            `json:"checked_items"`
	CookableRecipes int            `json:"cookable_recipes"`
	TotalRecipes    int            `json:"total_recipes"`
}
