package models

import (
	"fmt"
	"strings"

	"bluepenguin/pkg/auctionerrors"
)

// VIP and moderation rules
const (
	// VIPMinTransactions must be exceeded, counting sales and purchases that were not rejected
	VIPMinTransactions = 5
	// VIPMinBalance must be exceeded to earn or keep VIP status
	VIPMinBalance = 5000.0
	// VIPDiscountRate of the price is credited back to a VIP buyer
	VIPDiscountRate = 0.10
	// MaxSuspensionStrikes removes an account for good
	MaxSuspensionStrikes = 3
	// MaxReportLength caps the text of a report
	MaxReportLength = 1000

	MinCardExpireYear = 2024
	MaxCardExpireYear = 2050
)

// VIPReview returns the status the account should hold given the number of its
// transactions and of the reports filed against it. Only users are promoted and
// only VIPs are demoted; every other status is returned unchanged.
func (a Account) VIPReview(transactions, reports int) AccountStatus {
	switch a.Status {
	case StatusUser:
		if !a.IsSuspended && transactions > VIPMinTransactions && reports == 0 && a.Balance > VIPMinBalance {
			return StatusVIP
		}
	case StatusVIP:
		if reports > 0 || a.Balance <= VIPMinBalance {
			return StatusUser
		}
	}
	return a.Status
}

// VIPDiscount is the amount credited back to the buyer of a purchase at price
func VIPDiscount(status AccountStatus, price float64) float64 {
	if status != StatusVIP || price <= 0 {
		return 0
	}
	return price * VIPDiscountRate
}

// PointsFor is the loyalty points earned by paying amount
func PointsFor(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount)
}

// Removed reports whether the account has run out of suspension strikes
func (a Account) Removed() bool {
	return a.IsRemoved || a.SuspensionStrikes >= MaxSuspensionStrikes
}

// Validate checks the card form
func (c CardDetails) Validate() error {
	digits := strings.ReplaceAll(c.CardNumber, " ", "")
	if len(digits) < 12 || len(digits) > 19 || strings.Trim(digits, "0123456789") != "" {
		return fmt.Errorf("%w - card number must be 12 to 19 digits", auctionerrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.HolderName) == "" || len(c.HolderName) > 100 {
		return fmt.Errorf("%w - card holder name is required", auctionerrors.ErrInvalidInput)
	}
	if c.ExpireMonth < 1 || c.ExpireMonth > 12 {
		return fmt.Errorf("%w - expire month must be between 1 and 12", auctionerrors.ErrInvalidInput)
	}
	if c.ExpireYear < MinCardExpireYear || c.ExpireYear > MaxCardExpireYear {
		return fmt.Errorf("%w - expire year must be between %d and %d", auctionerrors.ErrInvalidInput, MinCardExpireYear, MaxCardExpireYear)
	}
	return nil
}

// MaskedNumber returns the card number with every digit but the last four hidden
func (c CardDetails) MaskedNumber() string {
	digits := strings.ReplaceAll(c.CardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
