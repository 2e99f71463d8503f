package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	market "bluepenguin/internal/marketService"
	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

//go:generate mockgen -destination=mock_market_service.go -package=handler . MarketServiceInterface

type MarketServiceInterface interface {
	PostItem(ctx context.Context, sellerProfileID string, in market.ItemInput) (models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	DeleteItem(ctx context.Context, profileID, itemID string) error
	ChangeDeadline(ctx context.Context, profileID, itemID string, deadline time.Time) (models.Item, error)
	SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)

	TrendingCollections(ctx context.Context, limit int) ([]models.CollectionCount, error)
	RecentBids(ctx context.Context, limit int) ([]models.Bid, error)
	PopularItems(ctx context.Context, limit int) ([]models.Item, error)
	BestDeals(ctx context.Context, limit int) ([]models.Item, error)
	ItemsByRating(ctx context.Context, limit int) ([]models.Item, error)

	PostComment(ctx context.Context, profileID, itemID, text string, parentID *string) (models.Comment, error)
	ListComments(ctx context.Context, itemID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, commentID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, profileID, commentID string) error
	React(ctx context.Context, profileID, commentID string, kind models.ReactionKind) (models.Comment, error)

	SaveItem(ctx context.Context, profileID, itemID string) error
	ListSavedItems(ctx context.Context, profileID string) ([]models.Item, error)
	DeleteSavedItem(ctx context.Context, profileID, itemID string) error
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// PostItemHandler handles POST /api/items
func (h *MarketHandler) PostItemHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "PostItemHandler")
	if !ok {
		return
	}
	var req api.PostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostItemHandler", err)
		return
	}

	item, err := h.service.PostItem(c.Request.Context(), session.ProfileID, market.ItemInput{
		Title:        req.Title,
		Description:  req.Description,
		ImageURLs:    req.ImageURLs,
		Collection:   req.Collection,
		SellingPrice: req.SellingPrice,
		MinimumBid:   req.MinimumBid,
		MaximumBid:   req.MaximumBid,
		Deadline:     req.Deadline,
	})
	if err != nil {
		helpers.RespondError(c, "PostItemHandler", err, map[string]any{"profile_id": session.ProfileID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item listed successfully")
	helpers.LogSuccess("PostItemHandler", "item listed successfully", map[string]any{"item_id": item.ItemID})
}

// GetItemHandler handles GET /api/items/:item_id
func (h *MarketHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		helpers.RespondError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// DeleteItemHandler handles DELETE /api/items/:item_id
func (h *MarketHandler) DeleteItemHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "DeleteItemHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if err := h.service.DeleteItem(c.Request.Context(), session.ProfileID, itemID); err != nil {
		helpers.RespondError(c, "DeleteItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{"item_id": itemID})
}

// ChangeDeadlineHandler handles PATCH /api/items/:item_id/deadline
func (h *MarketHandler) ChangeDeadlineHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "ChangeDeadlineHandler")
	if !ok {
		return
	}
	var req api.ChangeDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChangeDeadlineHandler", err)
		return
	}

	itemID := c.Param("item_id")
	item, err := h.service.ChangeDeadline(c.Request.Context(), session.ProfileID, itemID, req.Deadline)
	if err != nil {
		helpers.RespondError(c, "ChangeDeadlineHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "deadline updated successfully")
	helpers.LogSuccess("ChangeDeadlineHandler", "deadline updated successfully", map[string]any{
		"item_id":  itemID,
		"deadline": item.Deadline.Format(time.RFC3339),
	})
}

// SearchItemsHandler handles GET /api/items
func (h *MarketHandler) SearchItemsHandler(c *gin.Context) {
	filter, err := itemFilterFromQuery(c)
	if err != nil {
		helpers.RespondError(c, "SearchItemsHandler", err, nil)
		return
	}
	items, err := h.service.SearchItems(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, "SearchItemsHandler", err, nil)
		return
	}

	if items == nil {
		items = []models.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("SearchItemsHandler", "items retrieved successfully", map[string]any{"count": len(items)})
}

func itemFilterFromQuery(c *gin.Context) (models.ItemFilter, error) {
	filter := models.ItemFilter{
		Query:        c.Query("q"),
		Collection:   c.Query("collection"),
		Availability: models.Availability(c.Query("availability")),
		ProfileID:    c.Query("profile_id"),
		OrderBy:      c.Query("order_by"),
	}
	var err error
	if filter.MinHighestBid, err = helpers.QueryFloat(c, "min_bid"); err != nil {
		return models.ItemFilter{}, err
	}
	if filter.MaxHighestBid, err = helpers.QueryFloat(c, "max_bid"); err != nil {
		return models.ItemFilter{}, err
	}
	if filter.Limit, err = helpers.QueryInt(c, "limit", 0); err != nil {
		return models.ItemFilter{}, err
	}
	if filter.Offset, err = helpers.QueryInt(c, "offset", 0); err != nil {
		return models.ItemFilter{}, err
	}
	return filter, nil
}
