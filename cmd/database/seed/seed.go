package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/internal/utils"
)

const batchSize = 1000

// SeedRecipes loads the recipe catalog dataset into the database,
// replacing whatever is already there.
func SeedRecipes(db *gorm.DB) error {
	path := utils.GetConfig("RECIPE_DATASET_PATH")
	if path == "" {
		return fmt.Errorf("recipe dataset path not configured")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading recipe dataset: %w", err)
	}

	var rows []domain.SeedRecipe
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("parsing recipe dataset: %w", err)
	}
	log.Printf("Loaded %d recipes from %s", len(rows), path)

	recipes := make([]entities.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, entities.Recipe{
			Title:       row.Title,
			ImageURL:    row.ImageURL,
			Tags:        strings.Join(row.Tags, "|"),
			CookTime:    row.CookTime,
			TotalTime:   row.TotalTime,
			Ingredients: row.Ingredients.Join(),
			UseUpSoon:   strings.Join(row.UseUpSoon, "|"),
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}
		for i := 0; i < len(recipes); i += batchSize {
			end := i + batchSize
			if end > len(recipes) {
				end = len(recipes)
			}
			batch := recipes[i:end]
			if err := tx.Create(&batch).Error; err != nil {
				return err
			}
			log.Printf("Inserted %d / %d recipes", end, len(recipes))
		}
		return nil
	})
}
