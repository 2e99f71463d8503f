package client

import (
	"context"
	"net/http"
	"time"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
)

func (c *Client) PlaceBid(ctx context.Context, itemID string, amount float64) (api.BidResponse, error) {
	var bid api.BidResponse
	err := c.call(ctx, http.MethodPost, "/api/items/"+itemID+"/perform-bid", true, api.PlaceBidRequest{Amount: amount}, &bid)
	return bid, err
}

func (c *Client) Bids(ctx context.Context, itemID string) ([]api.BidResponse, error) {
	var bids []api.BidResponse
	err := c.call(ctx, http.MethodGet, "/api/items/"+itemID+"/bids", false, nil, &bids)
	return bids, err
}

func (c *Client) WinningBid(ctx context.Context, itemID string) (api.BidResponse, error) {
	var bid api.BidResponse
	err := c.call(ctx, http.MethodGet, "/api/items/"+itemID+"/winning-bid", false, nil, &bid)
	return bid, err
}

func (c *Client) PendingBids(ctx context.Context) ([]models.PendingBid, error) {
	var pending []models.PendingBid
	err := c.call(ctx, http.MethodGet, "/api/accounts/me/pending-bids", true, nil, &pending)
	return pending, err
}

func (c *Client) CloseAuction(ctx context.Context, itemID string) (models.Closure, error) {
	var closure models.Closure
	err := c.call(ctx, http.MethodPost, "/api/items/"+itemID+"/close", true, nil, &closure)
	return closure, err
}

func (c *Client) AcceptWin(ctx context.Context, transactionID string) (models.Transaction, error) {
	var txn models.Transaction
	err := c.call(ctx, http.MethodPost, "/api/transactions/"+transactionID+"/accept", true, nil, &txn)
	return txn, err
}

func (c *Client) RejectWin(ctx context.Context, transactionID string) (models.Rejection, error) {
	var rejection models.Rejection
	err := c.call(ctx, http.MethodPost, "/api/transactions/"+transactionID+"/reject", true, nil, &rejection)
	return rejection, err
}

func (c *Client) ShipItem(ctx context.Context, transactionID, carrier string, eta *time.Time) (models.Transaction, error) {
	var txn models.Transaction
	err := c.call(ctx, http.MethodPost, "/api/transactions/"+transactionID+"/ship", true, api.ShipRequest{Carrier: carrier, EstimatedDelivery: eta}, &txn)
	return txn, err
}

func (c *Client) MarkReceived(ctx context.Context, transactionID string) (models.Transaction, error) {
	var txn models.Transaction
	err := c.call(ctx, http.MethodPost, "/api/transactions/"+transactionID+"/received", true, nil, &txn)
	return txn, err
}

func (c *Client) Sales(ctx context.Context) ([]models.Transaction, error) {
	return c.transactions(ctx, "sales")
}

func (c *Client) Arrivals(ctx context.Context) ([]models.Transaction, error) {
	return c.transactions(ctx, "arrivals")
}

func (c *Client) NextActions(ctx context.Context) ([]models.Transaction, error) {
	return c.transactions(ctx, "next-actions")
}

func (c *Client) transactions(ctx context.Context, view string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := c.call(ctx, http.MethodGet, "/api/transactions/"+view, true, nil, &txns)
	return txns, err
}
