package recipe

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
)

type fakeRecipeRepository struct {
	recipes []*entities.Recipe
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, titleQuery string, limit int) ([]*entities.Recipe, error) {
	out := []*entities.Recipe{}
	for _, r := range f.recipes {
		if titleQuery != "" && !containsFold(r.Title, titleQuery) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	f.recipes = append(f.recipes, r)
	return nil
}

func (f *fakeRecipeRepository) CountRecipes(_ context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

type fakeFridgeRepository struct {
	items []entities.InventoryItem
}

func (f *fakeFridgeRepository) GetItems(_ context.Context, _ string) ([]entities.InventoryItem, error) {
	return f.items, nil
}

func (f *fakeFridgeRepository) ReplaceItems(_ context.Context, _ string, items []entities.InventoryItem) error {
	f.items = items
	return nil
}

func (f *fakeFridgeRepository) CreateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

func (f *fakeFridgeRepository) GetReceiptScanByID(_ context.Context, _ string) (*entities.ReceiptScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFridgeRepository) UpdateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

type fakeUserRepository struct {
	user *entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func catalogRecipe(title, tags, ingredients string, cookTime, totalTime int) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Title:       title,
		Tags:        tags,
		Ingredients: ingredients,
		CookTime:    cookTime,
		TotalTime:   totalTime,
	}
}

func newTestService(recipes []*entities.Recipe, items []entities.InventoryItem, u *entities.User) RecipeService {
	if u == nil {
		u = &entities.User{ID: uuid.New(), TimePreference: "any"}
	}
	return NewRecipeService(
		&fakeRecipeRepository{recipes: recipes},
		&fakeFridgeRepository{items: items},
		&fakeUserRepository{user: u},
	)
}

func TestListRecipesScoresAgainstFridge(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Omelette", "", "eggs|butter", 10, 0),
		catalogRecipe("Pancakes", "", "flour|eggs|milk", 15, 0),
	}
	items := []entities.InventoryItem{
		{Name: "Eggs", Category: entities.CategoryProtein},
		{Name: "Butter", Category: entities.CategoryDairy},
	}

	svc := newTestService(recipes, items, nil)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{}, uuid.NewString())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 recipes, got %d", resp.Total)
	}

	omelette := resp.Recipes[0]
	assert.True(t, omelette.Score.CanMake)
	assert.Equal(t, 2, omelette.Score.MatchCount)
	assert.Empty(t, omelette.Score.Missing)

	pancakes := resp.Recipes[1]
	assert.False(t, pancakes.Score.CanMake)
	assert.Equal(t, []string{"flour", "milk"}, pancakes.Score.Missing)
}

func TestListRecipesAllergyHardBlock(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Peanut Noodles", "", "noodles|peanut butter|scallion", 20, 0),
		catalogRecipe("Fried Rice", "", "rice|egg|soy sauce", 15, 0),
	}
	u := &entities.User{ID: uuid.New(), Allergies: "Peanut", TimePreference: "any"}

	svc := newTestService(recipes, nil, u)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{}, u.ID.String())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 recipe after allergy filter, got %d", resp.Total)
	}
	assert.Equal(t, "Fried Rice", resp.Recipes[0].Title)
}

func TestListRecipesCustomAllergySubstring(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Kiwi Salad", "", "kiwi|spinach", 5, 0),
		catalogRecipe("Green Salad", "", "lettuce|cucumber", 5, 0),
	}
	u := &entities.User{ID: uuid.New(), Allergies: "kiwi", TimePreference: "any"}

	svc := newTestService(recipes, nil, u)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{}, u.ID.String())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 recipe, got %d", resp.Total)
	}
	assert.Equal(t, "Green Salad", resp.Recipes[0].Title)
}

func TestListRecipesDietaryAndSemantics(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Tofu Bowl", "Vegan|Gluten-Free", "tofu|rice", 25, 0),
		catalogRecipe("Veggie Pasta", "Vegetarian", "pasta|tomato", 20, 0),
	}
	u := &entities.User{ID: uuid.New(), Dietary: "Vegan|Gluten-Free", TimePreference: "any"}

	svc := newTestService(recipes, nil, u)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{}, u.ID.String())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected only the recipe satisfying every preference, got %d", resp.Total)
	}
	assert.Equal(t, "Tofu Bowl", resp.Recipes[0].Title)
}

func TestListRecipesTimeCapFromProfile(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Quick Toast", "", "bread|butter", 5, 0),
		catalogRecipe("Slow Stew", "", "beef|potato", 0, 90),
	}
	u := &entities.User{ID: uuid.New(), TimePreference: "quick"}

	svc := newTestService(recipes, nil, u)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{}, u.ID.String())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 recipe under the quick cap, got %d", resp.Total)
	}
	assert.Equal(t, "Quick Toast", resp.Recipes[0].Title)
}

func TestListRecipesExplicitMaxTimeOverridesProfile(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Quick Toast", "", "bread|butter", 5, 0),
		catalogRecipe("Roast", "", "chicken", 0, 60),
	}
	u := &entities.User{ID: uuid.New(), TimePreference: "quick"}

	svc := newTestService(recipes, nil, u)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{MaxTime: 120}, u.ID.String())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	assert.Equal(t, 2, resp.Total)
}

func TestListRecipesTagFilter(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("Tofu Bowl", "Vegan|Dinner", "tofu", 25, 0),
		catalogRecipe("Omelette", "Breakfast", "eggs", 10, 0),
	}

	svc := newTestService(recipes, nil, nil)
	resp, err := svc.ListRecipes(context.Background(), domain.ListRecipesQuery{Tag: "breakfast"}, uuid.NewString())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 tagged recipe, got %d", resp.Total)
	}
	assert.Equal(t, "Omelette", resp.Recipes[0].Title)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	_, err := svc.GetRecipe(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetIngredientsDistinctSorted(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("A", "", "Eggs|Milk", 1, 0),
		catalogRecipe("B", "", "milk|Flour", 1, 0),
	}

	svc := newTestService(recipes, nil, nil)
	resp, err := svc.GetIngredients(context.Background(), "")
	if err != nil {
		t.Fatalf("GetIngredients: %v", err)
	}
	assert.Equal(t, []string{"eggs", "flour", "milk"}, resp.Ingredients)
}

func TestGetIngredientsSuggestionsRankedByDistance(t *testing.T) {
	recipes := []*entities.Recipe{
		catalogRecipe("A", "", "milk|mint|basil|chicken breast", 1, 0),
	}

	svc := newTestService(recipes, nil, nil)
	resp, err := svc.GetIngredients(context.Background(), "milkk")
	if err != nil {
		t.Fatalf("GetIngredients: %v", err)
	}
	if len(resp.Ingredients) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	assert.Equal(t, "milk", resp.Ingredients[0])
}
