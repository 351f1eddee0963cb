package fridge

import (
	"context"

	"gorm.io/gorm"

	"fridgetofeast/entities"
)

type (
	FridgeRepository interface {
		GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error)
		ReplaceItems(ctx context.Context, userID string, items []entities.InventoryItem) error

		// Receipt scanning related
		CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("days_left asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// ReplaceItems persists a full fridge snapshot. The client always sends
// the whole list back, so the write is a delete-and-insert in one
// transaction.
func (r *fridgeRepository) ReplaceItems(ctx context.Context, userID string, items []entities.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *fridgeRepository) CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(receiptScan).Error
}

func (r *fridgeRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *fridgeRepository) UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(receiptScan).Error
}
