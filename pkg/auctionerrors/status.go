package auctionerrors

import (
	"errors"
	"net/http"
)

// Describe returns the HTTP status and the client-facing message for an error.
// The message is stable API surface: clients map it back to the sentinel.
func Describe(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized, "session expired, sign in again"
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"

	case errors.Is(err, ErrSelfBid):
		return http.StatusForbidden, "sellers cannot bid on their own items"
	case errors.Is(err, ErrAccountSuspended):
		return http.StatusForbidden, "account is suspended"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "not allowed"

	case errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, ErrTransactionNotFound):
		return http.StatusNotFound, "transaction not found"
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, ErrAddressNotFound):
		return http.StatusNotFound, "shipping address not found"
	case errors.Is(err, ErrNoBids):
		return http.StatusNotFound, "no bids found for item"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not found"

	case errors.Is(err, ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, ErrOutBid):
		return http.StatusConflict, "outbid by another bidder"
	case errors.Is(err, ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, ErrAlreadyClosed):
		return http.StatusConflict, "auction already closed"
	case errors.Is(err, ErrAuctionNotEnded):
		return http.StatusConflict, "auction has not ended yet"
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict, "action not allowed in the current state"
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, "resource already exists"

	case errors.Is(err, ErrInsufficientBalance):
		return http.StatusPaymentRequired, "insufficient balance"

	case errors.Is(err, ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
