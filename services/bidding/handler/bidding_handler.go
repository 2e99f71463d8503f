package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

//go:generate mockgen -destination=mock_bidding_service.go -package=handler . BiddingServiceInterface

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, itemID, bidderProfileID string, amount float64) (models.Bid, error)
	GetBidsForItem(ctx context.Context, itemID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, itemID string) (models.Bid, error)
	GetPendingBids(ctx context.Context, profileID string) ([]models.PendingBid, error)
	CloseAuction(ctx context.Context, itemID string) (models.Closure, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /api/items/:item_id/perform-bid
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "PlaceBidHandler")
	if !ok {
		return
	}
	var req api.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	itemID := c.Param("item_id")
	bid, err := h.service.PlaceBid(c.Request.Context(), itemID, session.ProfileID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"item_id":    itemID,
			"profile_id": session.ProfileID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, api.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"item_id":    bid.ItemID,
		"profile_id": session.ProfileID,
		"amount":     bid.Amount,
	})
}

// GetBidsByItemHandler handles GET /api/items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidsForItem(c.Request.Context(), itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, api.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /api/items/:item_id/winning-bid
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, api.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"item_id":    bid.ItemID,
		"profile_id": bid.ProfileID,
		"amount":     bid.Amount,
	})
}

// GetPendingBidsHandler handles GET /api/accounts/me/pending-bids
func (h *BiddingHandler) GetPendingBidsHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "GetPendingBidsHandler")
	if !ok {
		return
	}
	pending, err := h.service.GetPendingBids(c.Request.Context(), session.ProfileID)
	if err != nil {
		helpers.RespondError(c, "GetPendingBidsHandler", err, map[string]any{"profile_id": session.ProfileID})
		return
	}

	if pending == nil {
		pending = []models.PendingBid{}
	}
	utils.JSONResponse(c, http.StatusOK, pending, "pending bids retrieved successfully")
	helpers.LogSuccess("GetPendingBidsHandler", "pending bids retrieved successfully", map[string]any{
		"profile_id": session.ProfileID,
		"count":      len(pending),
	})
}

// CloseAuctionHandler handles POST /api/items/:item_id/close
func (h *BiddingHandler) CloseAuctionHandler(c *gin.Context) {
	if _, ok := helpers.CurrentSession(c, "CloseAuctionHandler"); !ok {
		return
	}
	itemID := c.Param("item_id")
	closure, err := h.service.CloseAuction(c.Request.Context(), itemID)
	if err != nil {
		helpers.RespondError(c, "CloseAuctionHandler", err, map[string]any{"item_id": itemID})
		return
	}

	message := "auction closed without bids"
	if closure.Winner != nil {
		message = "auction closed with a winner"
	}
	utils.JSONResponse(c, http.StatusOK, closure, message)
	helpers.LogSuccess("CloseAuctionHandler", message, map[string]any{"item_id": itemID, "rejected": closure.Rejected})
}
