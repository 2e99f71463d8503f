package perftests

import (
	"context"
	"fmt"
	"io"
	"time"

	auction "bluepenguin/internal/auctionService"
	market "bluepenguin/internal/marketService"
	"bluepenguin/internal/repository"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

const sellerID = "seller"

var collections = []string{"Antiques", "Coins", "Stamps", "Vinyl"}

// fixture is a memory repo with a seller, a pool of bidders and open items
type fixture struct {
	repo    *repository.MemoryRepo
	svc     *auction.AuctionService
	market  *market.MarketService
	bidders []string
}

func newFixture(numItems, numBidders int) (*fixture, error) {
	utils.SetOutput(io.Discard)
	ctx := context.Background()
	repo := repository.NewMemoryRepo()

	f := &fixture{
		repo:   repo,
		svc:    auction.NewAuctionService(repo),
		market: market.NewMarketService(repo, utils.SystemClock{}),
	}
	if err := addProfile(ctx, repo, sellerID); err != nil {
		return nil, err
	}
	for i := 0; i < numBidders; i++ {
		id := fmt.Sprintf("user_%d", i)
		if err := addProfile(ctx, repo, id); err != nil {
			return nil, err
		}
		f.bidders = append(f.bidders, id)
	}
	for i := 0; i < numItems; i++ {
		it := item(fmt.Sprintf("item_%d", i), 50)
		it.Collection = collections[i%len(collections)]
		repo.AddItem(it)
	}
	return f, nil
}

func addProfile(ctx context.Context, repo *repository.MemoryRepo, profileID string) error {
	account := models.Account{
		AccountID: "acc-" + profileID,
		Email:     profileID + "@bench.example",
		Username:  profileID,
		Status:    models.StatusUser,
		CreatedAt: time.Now().UTC(),
	}
	return repo.CreateAccount(ctx, account, models.Profile{ProfileID: profileID, DisplayName: profileID})
}

func item(itemID string, minimumBid float64) models.Item {
	return models.Item{
		ItemID:       itemID,
		ProfileID:    sellerID,
		Title:        "title " + itemID,
		Description:  "benchmark item",
		MinimumBid:   minimumBid,
		MaximumBid:   1e12,
		HighestBid:   minimumBid,
		Deadline:     time.Now().UTC().Add(24 * time.Hour),
		DatePosted:   time.Now().UTC(),
		Availability: models.Available,
	}
}
