package shopping

import (
	"context"

	"gorm.io/gorm"

	"fridgetofeast/entities"
)

type (
	ShoppingRepository interface {
		GetItems(ctx context.Context, userID string) ([]entities.ShoppingItem, error)
		ReplaceItems(ctx context.Context, userID string, items []entities.ShoppingItem) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetItems(ctx context.Context, userID string) ([]entities.ShoppingItem, error) {
	var items []entities.ShoppingItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *shoppingRepository) ReplaceItems(ctx context.Context, userID string, items []entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.ShoppingItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
