package models

import "time"

// AccountStatus is the permission tier of an account
type AccountStatus string

const (
	StatusVisitor   AccountStatus = "visitor"
	StatusUser      AccountStatus = "user"
	StatusVIP       AccountStatus = "vip"
	StatusSuperuser AccountStatus = "superuser"
)

// Availability is the listing state of an item
type Availability string

const (
	Available Availability = "available"
	Sold      Availability = "sold"
)

// BidStatus tracks whether a bid still competes for an item
type BidStatus string

const (
	BidActive   BidStatus = "active"
	BidClosed   BidStatus = "closed"
	BidDeclined BidStatus = "declined"
)

// WinnerStatus is the outcome assigned to a bid when its auction closes
type WinnerStatus string

const (
	WinnerIneligible WinnerStatus = "ineligible"
	WinnerAccepted   WinnerStatus = "accepted"
	WinnerRejected   WinnerStatus = "rejected"
)

// TransactionStatus is the order state of a won item
type TransactionStatus string

const (
	TxnAwaitingConfirmation TransactionStatus = "awaiting_confirmation"
	TxnConfirmed            TransactionStatus = "confirmed"
	TxnRejected             TransactionStatus = "rejected"
	TxnShipped              TransactionStatus = "shipped"
	TxnReceived             TransactionStatus = "received"
)

// Account holds credentials, permissions and money of a participant
type Account struct {
	AccountID         string        `json:"account_id" db:"account_id"`
	Email             string        `json:"email" db:"email"`
	Username          string        `json:"username" db:"username"`
	FirstName         string        `json:"first_name" db:"first_name"`
	LastName          string        `json:"last_name" db:"last_name"`
	PasswordHash      string        `json:"-" db:"password_hash"`
	Status            AccountStatus `json:"status" db:"status"`
	Balance           float64       `json:"balance" db:"balance"`
	IsSuspended       bool          `json:"is_suspended" db:"is_suspended"`
	SuspensionStrikes int           `json:"suspension_strikes" db:"suspension_strikes"`
	QuitRequested     bool          `json:"quit_requested" db:"quit_requested"`
	IsRemoved         bool          `json:"is_removed" db:"is_removed"`
	Points            int           `json:"points" db:"points"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// ShippingAddress is where won items of an account are delivered
type ShippingAddress struct {
	AccountID     string `json:"account_id" db:"account_id"`
	StreetAddress string `json:"street_address" db:"street_address"`
	AddressLine2  string `json:"address_line_2" db:"address_line_2"`
	City          string `json:"city" db:"city"`
	State         string `json:"state" db:"state"`
	Zip           string `json:"zip" db:"zip"`
	Country       string `json:"country" db:"country"`
}

// Profile is the public face of an account
type Profile struct {
	ProfileID     string  `json:"profile_id" db:"profile_id"`
	AccountID     string  `json:"account_id" db:"account_id"`
	DisplayName   string  `json:"display_name" db:"display_name"`
	DisplayIcon   string  `json:"display_icon" db:"display_icon"`
	Description   string  `json:"description" db:"description"`
	AverageRating float64 `json:"average_rating" db:"average_rating"`
	RatingCount   int     `json:"rating_count" db:"rating_count"`
	ItemCount     int     `json:"item_count" db:"item_count"`
}

// Rating is one profile's score of another
type Rating struct {
	RaterProfileID string    `json:"rater_profile_id" db:"rater_profile_id"`
	RateeProfileID string    `json:"ratee_profile_id" db:"ratee_profile_id"`
	Score          int       `json:"score" db:"score"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Item represents an auction listing
type Item struct {
	ItemID       string       `json:"item_id"`
	ProfileID    string       `json:"profile_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ImageURLs    []string     `json:"image_urls"`
	Collection   string       `json:"collection"`
	SellingPrice float64      `json:"selling_price"`
	MinimumBid   float64      `json:"minimum_bid"`
	MaximumBid   float64      `json:"maximum_bid"`
	HighestBid   float64      `json:"highest_bid"`
	TotalBids    int          `json:"total_bids"`
	Deadline     time.Time    `json:"deadline"`
	DatePosted   time.Time    `json:"date_posted"`
	Availability Availability `json:"availability"`
	WinningBidID *string      `json:"winning_bid_id,omitempty"`
	ClosedAt     *time.Time   `json:"closed_at,omitempty"`
}

// Bid represents a user's bid on an item
type Bid struct {
	BidID        string       `json:"bid_id" db:"bid_id"`
	ItemID       string       `json:"item_id" db:"item_id"`
	ProfileID    string       `json:"profile_id" db:"profile_id"`
	Amount       float64      `json:"amount" db:"amount"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	Status       BidStatus    `json:"status" db:"status"`
	WinnerStatus WinnerStatus `json:"winner_status" db:"winner_status"`
}

// Transaction is the order created for a winning bid
type Transaction struct {
	TransactionID     string            `json:"transaction_id" db:"transaction_id"`
	ItemID            string            `json:"item_id" db:"item_id"`
	BidID             string            `json:"bid_id" db:"bid_id"`
	SellerProfileID   string            `json:"seller_profile_id" db:"seller_profile_id"`
	BuyerProfileID    string            `json:"buyer_profile_id" db:"buyer_profile_id"`
	Amount            float64           `json:"amount" db:"amount"`
	Status            TransactionStatus `json:"status" db:"status"`
	Carrier           string            `json:"carrier,omitempty" db:"carrier"`
	EstimatedDelivery *time.Time        `json:"estimated_delivery,omitempty" db:"estimated_delivery"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// Comment is a message on an item page, optionally replying to another comment
type Comment struct {
	CommentID string    `json:"comment_id" db:"comment_id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	ProfileID string    `json:"profile_id" db:"profile_id"`
	ParentID  *string   `json:"parent_id,omitempty" db:"parent_id"`
	Text      string    `json:"text" db:"text"`
	Likes     int       `json:"likes" db:"likes"`
	Dislikes  int       `json:"dislikes" db:"dislikes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReactionKind is either a like or a dislike on a comment
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// SavedItem is an item on a profile's wishlist
type SavedItem struct {
	ProfileID string    `json:"profile_id" db:"profile_id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	SavedAt   time.Time `json:"saved_at" db:"saved_at"`
}

// ReportStatus is the moderation state of a report
type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
)

// Report is a complaint one profile files against another
type Report struct {
	ReportID          string       `json:"report_id" db:"report_id"`
	ReporterProfileID string       `json:"reporter_profile_id" db:"reporter_profile_id"`
	ReporteeProfileID string       `json:"reportee_profile_id" db:"reportee_profile_id"`
	Text              string       `json:"text" db:"text"`
	Status            ReportStatus `json:"status" db:"status"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
}

// CardDetails is the payment card on file for an account. Card numbers are unique.
type CardDetails struct {
	AccountID   string `json:"account_id" db:"account_id"`
	CardNumber  string `json:"-" db:"card_number"`
	HolderName  string `json:"card_holder_name" db:"card_holder_name"`
	ExpireMonth int    `json:"expire_month" db:"expire_month"`
	ExpireYear  int    `json:"expire_year" db:"expire_year"`
}

// PayPalDetails is the PayPal login on file for an account. Emails are unique.
type PayPalDetails struct {
	AccountID string `json:"account_id" db:"account_id"`
	Email     string `json:"paypal_email" db:"paypal_email"`
}

// PaymentDetails bundles the payment methods of an account; either may be nil
type PaymentDetails struct {
	Card   *CardDetails   `json:"card,omitempty"`
	PayPal *PayPalDetails `json:"paypal,omitempty"`
}
