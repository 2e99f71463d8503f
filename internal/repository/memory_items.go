package repository

import (
	"context"
	"fmt"
	"sort"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

// CreateItem stores a new listing and bumps the owner's item count
func (r *MemoryRepo) CreateItem(ctx context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; exists {
		return fmt.Errorf("create item %s: %w", item.ItemID, auctionerrors.ErrConflict)
	}
	profile, ok := r.profiles[item.ProfileID]
	if !ok {
		return fmt.Errorf("create item for profile %s: %w", item.ProfileID, auctionerrors.ErrProfileNotFound)
	}

	r.items[item.ItemID] = cloneItem(item)
	profile.ItemCount++
	r.profiles[profile.ProfileID] = profile
	return nil
}

// UpdateItemDetails replaces the descriptive fields and deadline of an item, leaving bid state untouched
func (r *MemoryRepo) UpdateItemDetails(ctx context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ItemID]
	if !ok {
		return models.Item{}, fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrItemNotFound)
	}
	stored.Title = item.Title
	stored.Description = item.Description
	stored.ImageURLs = append([]string(nil), item.ImageURLs...)
	stored.Collection = item.Collection
	stored.SellingPrice = item.SellingPrice
	stored.Deadline = item.Deadline
	r.items[item.ItemID] = stored
	return cloneItem(stored), nil
}

// DeleteItem removes a listing that has not received any bids, along with its comments and saves
func (r *MemoryRepo) DeleteItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if item.TotalBids > 0 || len(r.bids[itemID]) > 0 {
		return fmt.Errorf("delete item %s with %d bids: %w", itemID, item.TotalBids, auctionerrors.ErrInvalidState)
	}

	delete(r.items, itemID)
	delete(r.bids, itemID)
	for id, c := range r.comments {
		if c.ItemID == itemID {
			delete(r.comments, id)
			delete(r.reactions, id)
		}
	}
	for _, saved := range r.saves {
		delete(saved, itemID)
	}
	if profile, ok := r.profiles[item.ProfileID]; ok && profile.ItemCount > 0 {
		profile.ItemCount--
		r.profiles[profile.ProfileID] = profile
	}
	return nil
}

// SearchItems filters, orders and paginates all listings
func (r *MemoryRepo) SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		all = append(all, cloneItem(item))
	}
	return filter.Apply(all), nil
}

// CountCollections returns available item counts per collection, largest first
func (r *MemoryRepo) CountCollections(ctx context.Context) ([]models.CollectionCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, item := range r.items {
		if item.Availability == models.Available && item.Collection != "" {
			counts[item.Collection]++
		}
	}

	out := make([]models.CollectionCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.CollectionCount{Collection: name, Items: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Items == out[j].Items {
			return out[i].Collection < out[j].Collection
		}
		return out[i].Items > out[j].Items
	})
	return out, nil
}
