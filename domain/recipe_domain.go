package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe retrieved successfully"
	MessageSuccessGetIngredients  = "ingredients retrieved successfully"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe"
	MessageFailedGetIngredients  = "failed to retrieve ingredients"

	ErrRecipeNotFound = errors.New("recipe not found")
)

// IngredientList accepts either a JSON array of strings or a single
// pipe-delimited string on the wire. Both forms decode to the same
// ordered sequence; the raw variant never leaves the boundary.
type IngredientList []string

func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = strings.Split(raw, "|")
	return nil
}

// Join renders the canonical stored form (pipe-delimited text).
func (l IngredientList) Join() string {
	return strings.Join(l, "|")
}

type (
	ListRecipesQuery struct {
		Query   string
		Tag     string
		MaxTime int // 0 means "use profile default"
		Limit   int
	}

	RecipeScore struct {
		MatchCount int      `json:"match_count"`
		Total      int      `json:"total"`
		CanMake    bool     `json:"can_make"`
		Missing    []string `json:"missing,omitempty"`
	}

	RecipeResponse struct {
		ID          string      `json:"id"`
		Title       string      `json:"title"`
		ImageURL    string      `json:"image_url,omitempty"`
		Tags        []string    `json:"tags"`
		CookTime    int         `json:"cook_time"`
		TotalTime   int         `json:"total_time,omitempty"`
		Ingredients []string    `json:"ingredients"`
		Score       RecipeScore `json:"score"`
	}

	ListRecipesResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int              `json:"total"`
	}

	IngredientsResponse struct {
		Ingredients []string `json:"ingredients"`
	}

	// SeedRecipe is the dataset row consumed by the seeder; its
	// ingredient field arrives in either wire form.
	SeedRecipe struct {
		Title       string         `json:"title"`
		ImageURL    string         `json:"image"`
		Tags        []string       `json:"tags"`
		CookTime    int            `json:"cookTime"`
		TotalTime   int            `json:"totalTime"`
		Ingredients IngredientList `json:"ingredients"`
		UseUpSoon   []string       `json:"useUpSoon"`
	}
)
