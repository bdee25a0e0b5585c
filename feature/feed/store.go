package feed

import (
	"context"
	"fmt"
	"strings"

	"collection-sync/core/database"
	"collection-sync/feature/feed/models"

	"gorm.io/gorm"
)

// Store persists mirrored feed items.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the 'feed_items' table and verifies its columns.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate feed_items: %w", err)
	}

	missing, err := database.MissingColumns(ctx, s.db, models.Item{}.TableName(), models.Columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("feed_items is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// List returns the items of a feed in mirrored order.
func (s *Store) List(ctx context.Context, feed string) ([]*models.Item, error) {
	var items []*models.Item
	err := s.db.WithContext(ctx).
		Where("feed = ?", feed).
		Order("position ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items of feed %s: %w", feed, err)
	}
	return items, nil
}

// Save replaces the stored state of a feed in a single transaction: removed rows are deleted,
// then every item is written with its position in items.
func (s *Store) Save(ctx context.Context, feed string, items, removed []*models.Item) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(removed))
		for _, item := range removed {
			if item.ID != 0 {
				ids = append(ids, item.ID)
			}
		}
		if len(ids) > 0 {
			if err := tx.Where("feed = ?", feed).Delete(&models.Item{}, ids).Error; err != nil {
				return fmt.Errorf("failed to delete items of feed %s: %w", feed, err)
			}
		}

		for i, item := range items {
			item.Feed = feed
			item.Position = i
			if err := tx.Save(item).Error; err != nil {
				return fmt.Errorf("failed to save item %s of feed %s: %w", item.ItemKey, feed, err)
			}
		}
		return nil
	})
}
