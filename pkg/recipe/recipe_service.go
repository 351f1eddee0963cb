package recipe

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/pkg/fridge"
	"fridgetofeast/pkg/matching"
	"fridgetofeast/pkg/user"
)

const (
	defaultListLimit = 200
	// Recipes with no time information sort behind every cap.
	unknownTime = 1 << 30

	maxSuggestions = 10
)

// allergenKeywords maps a canonical allergy to the ingredient keywords it
// blocks. A user-typed allergy outside this table falls back to plain
// substring matching.
var allergenKeywords = map[string][]string{
	"peanut":    {"peanut", "groundnut"},
	"tree nuts": {"almond", "walnut", "pecan", "cashew", "pistachio", "hazelnut", "macadamia", "brazil nut", "pine nut"},
	"milk":      {"milk", "cheese", "butter", "cream", "yogurt", "whey", "casein"},
	"egg":       {"egg", "eggs", "mayonnaise", "mayo"},
	"wheat":     {"wheat", "flour", "bread", "pasta", "noodle", "gluten"},
	"soy":       {"soy", "soya", "tofu", "edamame", "soy sauce"},
	"fish":      {"fish", "salmon", "tuna", "cod", "tilapia", "anchovy"},
	"shellfish": {"shrimp", "prawn", "crab", "lobster", "clam", "mussel", "oyster", "scallop"},
	"sesame":    {"sesame", "tahini"},
}

// dietaryTags maps a dietary preference to the catalog tags that satisfy
// it. Preferences outside the table match their own name.
var dietaryTags = map[string][]string{
	"vegetarian":  {"Vegetarian", "Meatless"},
	"vegan":       {"Vegan"},
	"gluten-free": {"Gluten-Free"},
	"dairy-free":  {"Dairy-Free"},
	"halal":       {"Halal"},
	"kosher":      {"Kosher"},
}

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, query domain.ListRecipesQuery, userID string) (domain.ListRecipesResponse, error)
		GetRecipe(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error)
		GetIngredients(ctx context.Context, query string) (domain.IngredientsResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		fridgeRepository fridge.FridgeRepository
		userRepository   user.UserRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fridgeRepository fridge.FridgeRepository, userRepository user.UserRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		fridgeRepository: fridgeRepository,
		userRepository:   userRepository,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, query domain.ListRecipesQuery, userID string) (domain.ListRecipesResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx, query.Query, limit)
	if err != nil {
		return domain.ListRecipesResponse{}, err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ListRecipesResponse{}, err
	}

	items, err := s.fridgeRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ListRecipesResponse{}, err
	}

	dietary := splitPipe(u.Dietary)
	allergies := splitPipe(u.Allergies)
	timeCap := resolveTimeCap(query.MaxTime, u.TimePreference)

	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		if query.Tag != "" && !hasTag(r, query.Tag) {
			continue
		}
		if len(allergies) > 0 && violatesAllergies(r, allergies) {
			continue
		}
		if len(dietary) > 0 && !matchesDietary(r, dietary) {
			continue
		}
		if timeCap > 0 && recipeTime(r) > timeCap {
			continue
		}
		out = append(out, s.toResponse(r, items))
	}

	return domain.ListRecipesResponse{
		Recipes: out,
		Total:   len(out),
	}, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	items, err := s.fridgeRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(r, items), nil
}

// GetIngredients returns the distinct ingredient names of the catalog.
// With a query it instead returns the closest names by edit distance, so
// the client can offer "did you mean" completions while typing.
func (s *recipeService) GetIngredients(ctx context.Context, query string) (domain.IngredientsResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, "", 0)
	if err != nil {
		return domain.IngredientsResponse{}, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, r := range recipes {
		for _, ing := range matching.ExtractIngredients(toMatchRecipe(r)) {
			key := matching.Normalize(ing)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, key)
		}
	}
	sort.Strings(names)

	q := matching.Normalize(query)
	if q == "" {
		return domain.IngredientsResponse{Ingredients: names}, nil
	}

	type ranked struct {
		name string
		dist int
	}
	var candidates []ranked
	for _, name := range names {
		dist := levenshtein.ComputeDistance(q, name)
		if strings.Contains(name, q) || dist <= len(q)/2+1 {
			candidates = append(candidates, ranked{name: name, dist: dist})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return domain.IngredientsResponse{Ingredients: out}, nil
}

func (s *recipeService) toResponse(r *entities.Recipe, items []entities.InventoryItem) domain.RecipeResponse {
	mr := toMatchRecipe(r)
	score := matching.Score(mr, items)

	return domain.RecipeResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Tags:        splitPipe(r.Tags),
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime,
		Ingredients: matching.ExtractIngredients(mr),
		Score: domain.RecipeScore{
			MatchCount: score.MatchCount,
			Total:      score.Total,
			CanMake:    score.CanMake,
			Missing:    matching.Missing(mr, items),
		},
	}
}

func toMatchRecipe(r *entities.Recipe) matching.Recipe {
	return matching.Recipe{
		RawIngredients: r.Ingredients,
		UseUpSoon:      splitPipe(r.UseUpSoon),
	}
}

// resolveTimeCap returns the effective cooking time cap in minutes, or 0
// for no cap. An explicit request value always wins over the profile.
func resolveTimeCap(maxTime int, timePreference string) int {
	if maxTime > 0 {
		return maxTime
	}
	switch timePreference {
	case "quick":
		return 20
	case "under30":
		return 30
	}
	return 0
}

func recipeTime(r *entities.Recipe) int {
	if r.TotalTime > 0 {
		return r.TotalTime
	}
	if r.CookTime > 0 {
		return r.CookTime
	}
	return unknownTime
}

func hasTag(r *entities.Recipe, tag string) bool {
	want := matching.Normalize(tag)
	for _, t := range splitPipe(r.Tags) {
		if matching.Normalize(t) == want {
			return true
		}
	}
	return false
}

// violatesAllergies hard-blocks a recipe whose ingredient text mentions
// any of the user's allergens. Canonical allergies expand to a keyword
// list; anything else matches as a raw substring.
func violatesAllergies(r *entities.Recipe, allergies []string) bool {
	text := matching.Normalize(ingredientText(r))
	if text == "" {
		return false
	}

	for _, a := range allergies {
		key := matching.Normalize(a)
		if key == "" {
			continue
		}

		if keywords, ok := allergenKeywords[key]; ok {
			for _, kw := range append(keywords, key) {
				if strings.Contains(text, matching.Normalize(kw)) {
					return true
				}
			}
			continue
		}

		if strings.Contains(text, key) {
			return true
		}
	}
	return false
}

// matchesDietary applies AND semantics: every selected preference must be
// satisfied by at least one recipe tag.
func matchesDietary(r *entities.Recipe, dietary []string) bool {
	tags := make(map[string]struct{})
	for _, t := range splitPipe(r.Tags) {
		tags[matching.Normalize(t)] = struct{}{}
	}

	for _, d := range dietary {
		allowed, ok := dietaryTags[matching.Normalize(d)]
		if !ok {
			allowed = []string{d}
		}
		satisfied := false
		for _, a := range allowed {
			if _, found := tags[matching.Normalize(a)]; found {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func ingredientText(r *entities.Recipe) string {
	if strings.TrimSpace(r.Ingredients) != "" {
		return r.Ingredients
	}
	return r.UseUpSoon
}

func splitPipe(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
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
