// Package api holds the request and response bodies of the REST API.
// Both the gin handlers and pkg/client encode these types.
package api

import (
	"time"

	"bluepenguin/pkg/models"
)

// PlaceBidRequest is the body of perform-bid
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	ItemID       string  `json:"item_id"`
	ProfileID    string  `json:"profile_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	WinnerStatus string  `json:"winner_status"`
	CreatedAt    string  `json:"created_at"`
}

// NewBidResponse formats a bid for the API
func NewBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		ItemID:       bid.ItemID,
		ProfileID:    bid.ProfileID,
		Amount:       bid.Amount,
		Status:       string(bid.Status),
		WinnerStatus: string(bid.WinnerStatus),
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses formats a list of bids, never returning nil
func NewBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

type ShipRequest struct {
	Carrier           string     `json:"carrier" binding:"required"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

type PostItemRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	ImageURLs    []string  `json:"image_urls" binding:"omitempty,dive,url"`
	Collection   string    `json:"collection"`
	SellingPrice float64   `json:"selling_price" binding:"gte=0"`
	MinimumBid   float64   `json:"minimum_bid" binding:"gte=0"`
	MaximumBid   float64   `json:"maximum_bid" binding:"gte=0"`
	Deadline     time.Time `json:"deadline" binding:"required"`
}

type ChangeDeadlineRequest struct {
	Deadline time.Time `json:"deadline" binding:"required"`
}

type CommentRequest struct {
	Text     string  `json:"text" binding:"required"`
	ParentID *string `json:"parent_id"`
}

type ReactionRequest struct {
	Kind string `json:"kind" binding:"required,oneof=like dislike"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegistrationResponse is the body of a successful register call
type RegistrationResponse struct {
	Account models.Account `json:"account"`
	Profile models.Profile `json:"profile"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id"`
	ExpiresAt string `json:"expires_at"`
}

type SettingsRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

type BalanceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BalanceResponse struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
}

type AddressRequest struct {
	StreetAddress string `json:"street_address" binding:"required"`
	AddressLine2  string `json:"address_line_2"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country" binding:"required"`
}

type ProfileRequest struct {
	DisplayName *string `json:"display_name"`
	DisplayIcon *string `json:"display_icon"`
	Description *string `json:"description"`
}

type RateRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

type CardDetailsRequest struct {
	CardNumber  string `json:"card_number" binding:"required"`
	HolderName  string `json:"card_holder_name" binding:"required,max=100"`
	ExpireMonth int    `json:"expire_month" binding:"required,min=1,max=12"`
	ExpireYear  int    `json:"expire_year" binding:"required,min=2024,max=2050"`
}

type PayPalRequest struct {
	Email string `json:"paypal_email" binding:"required,email"`
}

// CardDetailsResponse shows a card with all but the last four digits hidden
type CardDetailsResponse struct {
	CardNumber  string `json:"card_number"`
	HolderName  string `json:"card_holder_name"`
	ExpireMonth int    `json:"expire_month"`
	ExpireYear  int    `json:"expire_year"`
}

func NewCardDetailsResponse(card models.CardDetails) CardDetailsResponse {
	return CardDetailsResponse{
		CardNumber:  card.MaskedNumber(),
		HolderName:  card.HolderName,
		ExpireMonth: card.ExpireMonth,
		ExpireYear:  card.ExpireYear,
	}
}

type PaymentDetailsResponse struct {
	Card   *CardDetailsResponse  `json:"card,omitempty"`
	PayPal *models.PayPalDetails `json:"paypal,omitempty"`
}

func NewPaymentDetailsResponse(details models.PaymentDetails) PaymentDetailsResponse {
	resp := PaymentDetailsResponse{PayPal: details.PayPal}
	if details.Card != nil {
		card := NewCardDetailsResponse(*details.Card)
		resp.Card = &card
	}
	return resp
}

type ReportRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}
