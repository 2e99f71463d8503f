package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	accounts "bluepenguin/internal/accountService"
	market "bluepenguin/internal/marketService"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

const demoPassword = "penguin-demo"

// seedDemoData creates a seller and a bidder with a few open auctions.
// Running it against a store that already holds the demo accounts is a no-op.
func seedDemoData(ctx context.Context, accountSvc *accounts.AccountService, marketSvc *market.MarketService, clock utils.Clock) error {
	seller, err := demoAccount(ctx, accountSvc, "emperor", 0)
	if errors.Is(err, auctionerrors.ErrConflict) {
		utils.Info("demo data already present", nil)
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := demoAccount(ctx, accountSvc, "rockhopper", 500); err != nil {
		return err
	}

	now := clock.Now()
	items := []market.ItemInput{
		{Title: "Vintage ice skates", Description: "Barely used, sharpened last winter", Collection: "Sports", SellingPrice: 120, MinimumBid: 10, Deadline: now.Add(48 * time.Hour)},
		{Title: "Hand-knit scarf", Description: "Blue and white stripes", Collection: "Clothing", SellingPrice: 40, MinimumBid: 5, Deadline: now.Add(24 * time.Hour)},
		{Title: "Antarctic atlas", Description: "1962 edition", Collection: "Books", SellingPrice: 75, MinimumBid: 15, Deadline: now.Add(72 * time.Hour)},
	}
	for _, in := range items {
		if _, err := marketSvc.PostItem(ctx, seller.Profile.ProfileID, in); err != nil {
			return fmt.Errorf("seed: post %q: %w", in.Title, err)
		}
	}
	utils.Info("demo data seeded", map[string]any{"items": len(items), "password": demoPassword})
	return nil
}

func demoAccount(ctx context.Context, svc *accounts.AccountService, name string, balance float64) (accounts.Registration, error) {
	reg, err := svc.Register(ctx, accounts.RegisterInput{
		Email:    name + "@bluepenguin.example",
		Username: name,
		Password: demoPassword,
	})
	if err != nil {
		return accounts.Registration{}, fmt.Errorf("seed: register %s: %w", name, err)
	}
	if _, err := svc.ApplyToBeUser(ctx, reg.Account.AccountID); err != nil {
		return accounts.Registration{}, fmt.Errorf("seed: upgrade %s: %w", name, err)
	}
	if balance > 0 {
		if _, err := svc.AddBalance(ctx, reg.Account.AccountID, balance); err != nil {
			return accounts.Registration{}, fmt.Errorf("seed: fund %s: %w", name, err)
		}
	}
	return reg, nil
}
