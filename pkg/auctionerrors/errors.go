package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrNotFound            = errors.New("not found")
	ErrItemNotFound        = fmt.Errorf("item %w", ErrNotFound)
	ErrBidNotFound         = fmt.Errorf("bid %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrProfileNotFound     = fmt.Errorf("profile %w", ErrNotFound)
	ErrCommentNotFound     = fmt.Errorf("comment %w", ErrNotFound)
	ErrAddressNotFound     = fmt.Errorf("shipping address %w", ErrNotFound)
	ErrNoBids              = errors.New("no bids found for item")
	ErrConflict            = errors.New("resource already exists")
)

// Bidding and auction lifecycle errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = fmt.Errorf("%w: amount does not exceed the current highest bid", ErrInvalidBid)
	ErrOutBid          = errors.New("outbid by a concurrent bid")
	ErrSelfBid         = errors.New("sellers cannot bid on their own items")
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrAlreadyClosed   = errors.New("auction already closed")
	ErrAuctionNotEnded = errors.New("auction deadline has not passed")
	ErrInvalidState    = errors.New("invalid state transition")
)

// Account and access errors
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrSessionExpired      = fmt.Errorf("session expired: %w", ErrUnauthenticated)
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidInput        = errors.New("invalid input")
)
