package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
)

func (c *Client) PostItem(ctx context.Context, req api.PostItemRequest) (models.Item, error) {
	var item models.Item
	err := c.call(ctx, http.MethodPost, "/api/items", true, req, &item)
	return item, err
}

func (c *Client) Item(ctx context.Context, itemID string) (models.Item, error) {
	var item models.Item
	err := c.call(ctx, http.MethodGet, "/api/items/"+itemID, false, nil, &item)
	return item, err
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.call(ctx, http.MethodDelete, "/api/items/"+itemID, true, nil, nil)
}

func (c *Client) ChangeDeadline(ctx context.Context, itemID string, deadline time.Time) (models.Item, error) {
	var item models.Item
	err := c.call(ctx, http.MethodPatch, "/api/items/"+itemID+"/deadline", true, api.ChangeDeadlineRequest{Deadline: deadline}, &item)
	return item, err
}

// SearchItems sends the non-zero fields of filter as query parameters
func (c *Client) SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("q", filter.Query)
	set("collection", filter.Collection)
	set("availability", string(filter.Availability))
	set("profile_id", filter.ProfileID)
	set("order_by", filter.OrderBy)
	if filter.MinHighestBid != nil {
		q.Set("min_bid", strconv.FormatFloat(*filter.MinHighestBid, 'f', -1, 64))
	}
	if filter.MaxHighestBid != nil {
		q.Set("max_bid", strconv.FormatFloat(*filter.MaxHighestBid, 'f', -1, 64))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	var items []models.Item
	err := c.call(ctx, http.MethodGet, "/api/items"+encodeQuery(q), false, nil, &items)
	return items, err
}

func (c *Client) Comments(ctx context.Context, itemID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.call(ctx, http.MethodGet, "/api/items/"+itemID+"/comments", false, nil, &comments)
	return comments, err
}

func (c *Client) Replies(ctx context.Context, itemID, commentID string) ([]models.Comment, error) {
	var replies []models.Comment
	err := c.call(ctx, http.MethodGet, "/api/items/"+itemID+"/comments/"+commentID+"/replies", false, nil, &replies)
	return replies, err
}

// PostComment posts a top-level comment, or a reply when parentID is non-empty
func (c *Client) PostComment(ctx context.Context, itemID, text, parentID string) (models.Comment, error) {
	req := api.CommentRequest{Text: text}
	if parentID != "" {
		req.ParentID = &parentID
	}
	var comment models.Comment
	err := c.call(ctx, http.MethodPost, "/api/items/"+itemID+"/comments", true, req, &comment)
	return comment, err
}

func (c *Client) DeleteComment(ctx context.Context, itemID, commentID string) error {
	return c.call(ctx, http.MethodDelete, "/api/items/"+itemID+"/comments/"+commentID, true, nil, nil)
}

func (c *Client) React(ctx context.Context, itemID, commentID string, kind models.ReactionKind) (models.Comment, error) {
	var comment models.Comment
	err := c.call(ctx, http.MethodPost, "/api/items/"+itemID+"/comments/"+commentID+"/reactions", true, api.ReactionRequest{Kind: string(kind)}, &comment)
	return comment, err
}

func (c *Client) SaveItem(ctx context.Context, itemID string) error {
	return c.call(ctx, http.MethodPost, "/api/accounts/me/saved-items/"+itemID, true, nil, nil)
}

func (c *Client) SavedItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := c.call(ctx, http.MethodGet, "/api/accounts/me/saved-items", true, nil, &items)
	return items, err
}

func (c *Client) DeleteSavedItem(ctx context.Context, itemID string) error {
	return c.call(ctx, http.MethodDelete, "/api/accounts/me/saved-items/"+itemID, true, nil, nil)
}

func (c *Client) TrendingCollections(ctx context.Context, limit int) ([]models.CollectionCount, error) {
	var counts []models.CollectionCount
	err := c.call(ctx, http.MethodGet, explorePath("trending", limit), false, nil, &counts)
	return counts, err
}

func (c *Client) RecentBids(ctx context.Context, limit int) ([]api.BidResponse, error) {
	var bids []api.BidResponse
	err := c.call(ctx, http.MethodGet, explorePath("recent-bids", limit), false, nil, &bids)
	return bids, err
}

func (c *Client) PopularItems(ctx context.Context, limit int) ([]models.Item, error) {
	return c.exploreItems(ctx, "popular", limit)
}

func (c *Client) BestDeals(ctx context.Context, limit int) ([]models.Item, error) {
	return c.exploreItems(ctx, "best-deals", limit)
}

func (c *Client) ItemsByRating(ctx context.Context, limit int) ([]models.Item, error) {
	return c.exploreItems(ctx, "by-rating", limit)
}

func (c *Client) exploreItems(ctx context.Context, name string, limit int) ([]models.Item, error) {
	var items []models.Item
	err := c.call(ctx, http.MethodGet, explorePath(name, limit), false, nil, &items)
	return items, err
}

func explorePath(name string, limit int) string {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return "/api/explore/" + name + encodeQuery(q)
}
