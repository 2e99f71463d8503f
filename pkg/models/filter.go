package models

import (
	"sort"
	"strings"
)

// Orderings accepted by ItemFilter; a leading "-" sorts descending
var ItemOrderings = map[string]bool{
	"total_bids": true, "-total_bids": true,
	"date_posted": true, "-date_posted": true,
	"deadline": true, "-deadline": true,
	"highest_bid": true, "-highest_bid": true,
}

// ItemFilter narrows an item search
type ItemFilter struct {
	Query         string
	Collection    string
	Availability  Availability
	ProfileID     string
	MinHighestBid *float64
	MaxHighestBid *float64
	OrderBy       string
	Limit         int
	Offset        int
}

// Matches reports whether item satisfies every set field of the filter
func (f ItemFilter) Matches(item Item) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(item.Title), q) && !strings.Contains(strings.ToLower(item.Description), q) {
			return false
		}
	}
	if f.Collection != "" && !strings.EqualFold(item.Collection, f.Collection) {
		return false
	}
	if f.Availability != "" && item.Availability != f.Availability {
		return false
	}
	if f.ProfileID != "" && item.ProfileID != f.ProfileID {
		return false
	}
	if f.MinHighestBid != nil && item.HighestBid <= *f.MinHighestBid {
		return false
	}
	if f.MaxHighestBid != nil && item.HighestBid >= *f.MaxHighestBid {
		return false
	}
	return true
}

// Apply filters, orders and paginates items in memory
func (f ItemFilter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	SortItems(out, f.OrderBy)

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []Item{}
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}

// SortItems orders items by one of ItemOrderings; unknown keys sort by newest first
func SortItems(items []Item, orderBy string) {
	desc := strings.HasPrefix(orderBy, "-")
	key := strings.TrimPrefix(orderBy, "-")
	if !ItemOrderings[orderBy] {
		key, desc = "date_posted", true
	}

	less := func(a, b Item) bool {
		switch key {
		case "total_bids":
			return a.TotalBids < b.TotalBids
		case "deadline":
			return a.Deadline.Before(b.Deadline)
		case "highest_bid":
			return a.HighestBid < b.HighestBid
		default:
			return a.DatePosted.Before(b.DatePosted)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// CollectionCount is the number of available items in a collection
type CollectionCount struct {
	Collection string `json:"collection" db:"collection"`
	Items      int    `json:"items" db:"items"`
}
