package matching

import (
	"strings"

	"fridgetofeast/entities"
)

// Recipe is the minimal shape scoring operates on. Exactly one of
// Ingredients or RawIngredients is normally set; UseUpSoon is the legacy
// suggestion list older catalog rows carry instead.
type Recipe struct {
	Ingredients    []string
	RawIngredients string
	UseUpSoon      []string
}

type Result struct {
	MatchCount int
	Total      int
	CanMake    bool
}

// Normalize lower-cases and trims a display name for comparison.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsSimilar reports whether two ingredient names refer to the same thing.
// The heuristic is bidirectional substring containment over normalized
// names: tolerant enough for "bell pepper" vs "Bell pepper, red" without
// a synonym table. Known to accept "pea"/"peach" and miss
// "scallion"/"green onion".
func IsSimilar(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// ExtractIngredients returns the canonical ordered ingredient names of a
// recipe regardless of which wire form it arrived in. Duplicates are kept;
// a recipe may legitimately list the same ingredient twice (divided use).
func ExtractIngredients(r Recipe) []string {
	if len(r.Ingredients) > 0 {
		return cleanList(r.Ingredients)
	}
	if strings.TrimSpace(r.RawIngredients) != "" {
		return cleanList(strings.Split(r.RawIngredients, "|"))
	}
	if len(r.UseUpSoon) > 0 {
		return cleanList(r.UseUpSoon)
	}
	return nil
}

// InInventory reports whether any inventory item name is similar to the
// ingredient.
func InInventory(ingredient string, items []entities.InventoryItem) bool {
	for _, item := range items {
		if IsSimilar(ingredient, item.Name) {
			return true
		}
	}
	return false
}

// Score counts how many of the recipe's ingredients the inventory
// satisfies. A recipe with no known ingredients is never makeable.
func Score(r Recipe, items []entities.InventoryItem) Result {
	ingredients := ExtractIngredients(r)
	if len(ingredients) == 0 {
		return Result{}
	}

	matchCount := 0
	for _, ing := range ingredients {
		if InInventory(ing, items) {
			matchCount++
		}
	}

	return Result{
		MatchCount: matchCount,
		Total:      len(ingredients),
		CanMake:    matchCount == len(ingredients),
	}
}

// Missing returns the ingredient names without any similar inventory
// match, in recipe order.
func Missing(r Recipe, items []entities.InventoryItem) []string {
	var missing []string
	for _, ing := range ExtractIngredients(r) {
		if !InInventory(ing, items) {
			missing = append(missing, ing)
		}
	}
	return missing
}

func cleanList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
