package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bluepenguin/internal/repository"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// Listing bounds applied when the seller leaves them unset
const (
	DefaultMinimumBid = 1.00
	DefaultMaximumBid = 1_000_000.00
	MaxPageSize       = 100
	DefaultPageSize   = 20
)

// Store is the persistence the marketplace needs
type Store interface {
	repository.ItemStore
	repository.SocialStore
	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)
}

// MarketService implements listings, explore queries, comments and saved items
type MarketService struct {
	repo  Store
	clock utils.Clock
}

// NewMarketService creates a new MarketService; a nil clock uses the system clock
func NewMarketService(repo Store, clock utils.Clock) *MarketService {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &MarketService{repo: repo, clock: clock}
}

// ItemInput is what a seller provides when listing an item
type ItemInput struct {
	Title        string
	Description  string
	ImageURLs    []string
	Collection   string
	SellingPrice float64
	MinimumBid   float64
	MaximumBid   float64
	Deadline     time.Time
}

func (in *ItemInput) normalize(now time.Time) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Collection = strings.TrimSpace(in.Collection)
	if in.Title == "" {
		return fmt.Errorf("%w - title is required", auctionerrors.ErrInvalidInput)
	}
	if in.MinimumBid == 0 {
		in.MinimumBid = DefaultMinimumBid
	}
	if in.MaximumBid == 0 {
		in.MaximumBid = DefaultMaximumBid
	}
	switch {
	case in.MinimumBid < 0 || in.SellingPrice < 0:
		return fmt.Errorf("%w - prices cannot be negative", auctionerrors.ErrInvalidInput)
	case in.MaximumBid < in.MinimumBid:
		return fmt.Errorf("%w - maximum bid is below the minimum bid", auctionerrors.ErrInvalidInput)
	case !in.Deadline.After(now):
		return fmt.Errorf("%w - deadline must be in the future", auctionerrors.ErrInvalidInput)
	}
	return nil
}

// PostItem lists a new item for the seller profile
func (s *MarketService) PostItem(ctx context.Context, sellerProfileID string, in ItemInput) (models.Item, error) {
	if err := s.checkActive(ctx, sellerProfileID); err != nil {
		return models.Item{}, err
	}
	now := s.clock.Now()
	if err := in.normalize(now); err != nil {
		return models.Item{}, fmt.Errorf("service: %w", err)
	}

	item := models.Item{
		ItemID:       utils.GenerateID(),
		ProfileID:    sellerProfileID,
		Title:        in.Title,
		Description:  in.Description,
		ImageURLs:    in.ImageURLs,
		Collection:   in.Collection,
		SellingPrice: in.SellingPrice,
		MinimumBid:   in.MinimumBid,
		MaximumBid:   in.MaximumBid,
		HighestBid:   in.MinimumBid,
		Deadline:     in.Deadline.UTC(),
		DatePosted:   now,
		Availability: models.Available,
	}
	if item.ImageURLs == nil {
		item.ImageURLs = []string{}
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item: %w", err)
	}

	utils.Info("item listed", map[string]any{"item_id": item.ItemID, "profile_id": sellerProfileID})
	return item, nil
}

// GetItem returns a single item
func (s *MarketService) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// DeleteItem removes a listing that nobody has bid on yet
func (s *MarketService) DeleteItem(ctx context.Context, profileID, itemID string) error {
	if _, err := s.ownedItem(ctx, profileID, itemID); err != nil {
		return err
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	return nil
}

// ChangeDeadline moves the deadline of a running auction
func (s *MarketService) ChangeDeadline(ctx context.Context, profileID, itemID string, deadline time.Time) (models.Item, error) {
	item, err := s.ownedItem(ctx, profileID, itemID)
	if err != nil {
		return models.Item{}, err
	}
	now := s.clock.Now()
	if !item.IsOpen(now) {
		return models.Item{}, fmt.Errorf("service: item %s: %w", itemID, auctionerrors.ErrAuctionClosed)
	}
	if !deadline.After(now) {
		return models.Item{}, fmt.Errorf("service: %w - deadline must be in the future", auctionerrors.ErrInvalidInput)
	}

	item.Deadline = deadline.UTC()
	updated, err := s.repo.UpdateItemDetails(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	return updated, nil
}

// SearchItems filters, orders and pages the catalogue
func (s *MarketService) SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if filter.OrderBy != "" && !models.ItemOrderings[filter.OrderBy] {
		return nil, fmt.Errorf("service: %w - unknown ordering %q", auctionerrors.ErrInvalidInput, filter.OrderBy)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, fmt.Errorf("service: %w - negative limit or offset", auctionerrors.ErrInvalidInput)
	}
	if filter.Availability != "" && filter.Availability != models.Available && filter.Availability != models.Sold {
		return nil, fmt.Errorf("service: %w - unknown availability %q", auctionerrors.ErrInvalidInput, filter.Availability)
	}
	filter.Limit = pageSize(filter.Limit)

	items, err := s.repo.SearchItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}
	return items, nil
}

// ownedItem loads an item and checks that profileID listed it
func (s *MarketService) ownedItem(ctx context.Context, profileID, itemID string) (models.Item, error) {
	if profileID == "" || itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing profile or item ID", auctionerrors.ErrInvalidInput)
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	if item.ProfileID != profileID {
		return models.Item{}, fmt.Errorf("service: %w - only the seller can change item %s", auctionerrors.ErrForbidden, itemID)
	}
	return item, nil
}

// checkActive rejects visitors and suspended accounts
func (s *MarketService) checkActive(ctx context.Context, profileID string) error {
	if profileID == "" {
		return fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidInput)
	}
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("service: failed to load profile %s: %w", profileID, err)
	}
	account, err := s.repo.GetAccount(ctx, profile.AccountID)
	if err != nil {
		return fmt.Errorf("service: failed to load account: %w", err)
	}
	if account.IsSuspended {
		return fmt.Errorf("service: %w", auctionerrors.ErrAccountSuspended)
	}
	if account.Status == models.StatusVisitor {
		return fmt.Errorf("service: %w - visitors must apply to become users first", auctionerrors.ErrForbidden)
	}
	return nil
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
