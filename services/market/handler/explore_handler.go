package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepenguin/pkg/api"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

// TrendingHandler handles GET /api/explore/trending
func (h *MarketHandler) TrendingHandler(c *gin.Context) {
	explore(c, "TrendingHandler", h.service.TrendingCollections)
}

// RecentBidsHandler handles GET /api/explore/recent-bids
func (h *MarketHandler) RecentBidsHandler(c *gin.Context) {
	limit, ok := exploreLimit(c, "RecentBidsHandler")
	if !ok {
		return
	}
	bids, err := h.service.RecentBids(c.Request.Context(), limit)
	if err != nil {
		helpers.RespondError(c, "RecentBidsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, api.NewBidResponses(bids), "explore results retrieved successfully")
}

// PopularHandler handles GET /api/explore/popular
func (h *MarketHandler) PopularHandler(c *gin.Context) {
	explore(c, "PopularHandler", h.service.PopularItems)
}

// BestDealsHandler handles GET /api/explore/best-deals
func (h *MarketHandler) BestDealsHandler(c *gin.Context) {
	explore(c, "BestDealsHandler", h.service.BestDeals)
}

// ByRatingHandler handles GET /api/explore/by-rating
func (h *MarketHandler) ByRatingHandler(c *gin.Context) {
	explore(c, "ByRatingHandler", h.service.ItemsByRating)
}

func explore[T any](c *gin.Context, name string, fetch func(ctx context.Context, limit int) ([]T, error)) {
	limit, ok := exploreLimit(c, name)
	if !ok {
		return
	}
	results, err := fetch(c.Request.Context(), limit)
	if err != nil {
		helpers.RespondError(c, name, err, nil)
		return
	}

	if results == nil {
		results = []T{}
	}
	utils.JSONResponse(c, http.StatusOK, results, "explore results retrieved successfully")
	helpers.LogSuccess(name, "explore results retrieved successfully", map[string]any{"count": len(results)})
}

func exploreLimit(c *gin.Context, name string) (int, bool) {
	limit, err := helpers.QueryInt(c, "limit", 0)
	if err != nil {
		helpers.RespondError(c, name, err, nil)
		return 0, false
	}
	return limit, true
}
