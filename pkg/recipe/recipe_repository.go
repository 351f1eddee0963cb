package recipe

import (
	"context"

	"gorm.io/gorm"

	"fridgetofeast/entities"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, titleQuery string, limit int) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context, titleQuery string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if titleQuery != "" {
		query = query.Where("title ILIKE ?", "%"+titleQuery+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("title asc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
