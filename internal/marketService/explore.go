package market

import (
	"context"
	"fmt"
	"sort"

	"bluepenguin/pkg/models"
)

// TrendingCollections counts available items per collection, busiest first
func (s *MarketService) TrendingCollections(ctx context.Context, limit int) ([]models.CollectionCount, error) {
	counts, err := s.repo.CountCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count collections: %w", err)
	}
	if limit = pageSize(limit); len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// RecentBids returns the newest bids across all items
func (s *MarketService) RecentBids(ctx context.Context, limit int) ([]models.Bid, error) {
	bids, err := s.repo.RecentBids(ctx, pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("service: failed to get recent bids: %w", err)
	}
	return bids, nil
}

// PopularItems returns available items with the most bids
func (s *MarketService) PopularItems(ctx context.Context, limit int) ([]models.Item, error) {
	items, err := s.repo.SearchItems(ctx, models.ItemFilter{
		Availability: models.Available,
		OrderBy:      "-total_bids",
		Limit:        pageSize(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get popular items: %w", err)
	}
	return items, nil
}

// BestDeals returns available items whose highest bid is furthest below their selling price
func (s *MarketService) BestDeals(ctx context.Context, limit int) ([]models.Item, error) {
	items, err := s.availableItems(ctx)
	if err != nil {
		return nil, err
	}

	deals := items[:0]
	for _, it := range items {
		if it.SellingPrice > 0 {
			deals = append(deals, it)
		}
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].HighestBid/deals[i].SellingPrice < deals[j].HighestBid/deals[j].SellingPrice
	})
	return truncate(deals, limit), nil
}

// ItemsByRating returns available items ordered by their seller's average rating
func (s *MarketService) ItemsByRating(ctx context.Context, limit int) ([]models.Item, error) {
	items, err := s.availableItems(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make(map[string]float64)
	for _, it := range items {
		if _, ok := ratings[it.ProfileID]; ok {
			continue
		}
		profile, err := s.repo.GetProfile(ctx, it.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load seller %s: %w", it.ProfileID, err)
		}
		ratings[it.ProfileID] = profile.AverageRating
	}
	sort.SliceStable(items, func(i, j int) bool {
		return ratings[items[i].ProfileID] > ratings[items[j].ProfileID]
	})
	return truncate(items, limit), nil
}

func (s *MarketService) availableItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.SearchItems(ctx, models.ItemFilter{Availability: models.Available, OrderBy: "-date_posted"})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list available items: %w", err)
	}
	return items, nil
}

func truncate(items []models.Item, limit int) []models.Item {
	if limit = pageSize(limit); len(items) > limit {
		return items[:limit]
	}
	return items
}
