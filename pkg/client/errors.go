package client

import (
	"fmt"
	"net/http"

	"bluepenguin/pkg/auctionerrors"
)

// APIError is a failed call as reported by the server envelope.
// It unwraps to the matching sentinel of bluepenguin/pkg/auctionerrors when the
// server message is known, falling back to the sentinel for the status code.
type APIError struct {
	Status  int
	Message string
	Detail  string
	err     error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("client: %d %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("client: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

var sentinels = []error{
	auctionerrors.ErrSessionExpired,
	auctionerrors.ErrUnauthenticated,
	auctionerrors.ErrInvalidCredentials,
	auctionerrors.ErrSelfBid,
	auctionerrors.ErrAccountSuspended,
	auctionerrors.ErrForbidden,
	auctionerrors.ErrItemNotFound,
	auctionerrors.ErrBidNotFound,
	auctionerrors.ErrTransactionNotFound,
	auctionerrors.ErrAccountNotFound,
	auctionerrors.ErrProfileNotFound,
	auctionerrors.ErrCommentNotFound,
	auctionerrors.ErrAddressNotFound,
	auctionerrors.ErrNoBids,
	auctionerrors.ErrNotFound,
	auctionerrors.ErrBidTooLow,
	auctionerrors.ErrOutBid,
	auctionerrors.ErrAuctionClosed,
	auctionerrors.ErrAlreadyClosed,
	auctionerrors.ErrAuctionNotEnded,
	auctionerrors.ErrInvalidState,
	auctionerrors.ErrConflict,
	auctionerrors.ErrInsufficientBalance,
	auctionerrors.ErrInvalidBid,
	auctionerrors.ErrInvalidInput,
}

// byMessage is built from the server's own mapping so both sides agree on the wording
var byMessage = func() map[string]error {
	m := map[string]error{
		"no winning bid found":    auctionerrors.ErrNoBids,
		"invalid request payload": auctionerrors.ErrInvalidInput,
	}
	for _, err := range sentinels {
		_, message := auctionerrors.Describe(err)
		m[message] = err
	}
	return m
}()

func sentinelFor(status int, message string) error {
	if err, ok := byMessage[message]; ok {
		return err
	}
	switch status {
	case http.StatusUnauthorized:
		return auctionerrors.ErrUnauthenticated
	case http.StatusForbidden:
		return auctionerrors.ErrForbidden
	case http.StatusNotFound:
		return auctionerrors.ErrNotFound
	case http.StatusConflict:
		return auctionerrors.ErrConflict
	case http.StatusPaymentRequired:
		return auctionerrors.ErrInsufficientBalance
	case http.StatusBadRequest:
		return auctionerrors.ErrInvalidInput
	default:
		return nil
	}
}
