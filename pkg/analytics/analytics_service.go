package analytics

import (
	"context"
	"strings"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/pkg/fridge"
	"fridgetofeast/pkg/matching"
	"fridgetofeast/pkg/recipe"
	"fridgetofeast/pkg/shopping"
)

// expiringSoonDays is the daysLeft threshold counted as "use up soon" on
// the dashboard.
const expiringSoonDays = 2

type (
	AnalyticsService interface {
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	analyticsService struct {
		fridgeRepository   fridge.FridgeRepository
		shoppingRepository shopping.ShoppingRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewAnalyticsService(fridgeRepository fridge.FridgeRepository, shoppingRepository shopping.ShoppingRepository, recipeRepository recipe.RecipeRepository) AnalyticsService {
	return &analyticsService{
		fridgeRepository:   fridgeRepository,
		shoppingRepository: shoppingRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *analyticsService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.fridgeRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	shoppingItems, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx, "", 0)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{
		TotalItems:    len(items),
		ShoppingItems: len(shoppingItems),
		TotalRecipes:  len(recipes),
		ByCategory:    make(map[string]int),
	}
	for _, c := range entities.Categories {
		stats.ByCategory[c] = 0
	}

	for _, item := range items {
		if item.DaysLeft <= expiringSoonDays {
			stats.ExpiringSoon++
		}
		cat := item.Category
		if _, ok := stats.ByCategory[cat]; !ok {
			cat = entities.CategoryOther
		}
		stats.ByCategory[cat]++
	}

	for _, item := range shoppingItems {
		if item.Checked {
			stats.CheckedItems++
		}
	}

	for _, r := range recipes {
		score := matching.Score(matching.Recipe{
			RawIngredients: r.Ingredients,
			UseUpSoon:      splitPipe(r.UseUpSoon),
		}, items)
		if score.CanMake {
			stats.CookableRecipes++
		}
	}

	return stats, nil
}

func splitPipe(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
