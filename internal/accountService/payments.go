package accounts

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// GetPaymentDetails returns the card and PayPal login on file
func (s *AccountService) GetPaymentDetails(ctx context.Context, accountID string) (models.PaymentDetails, error) {
	details, err := s.repo.GetPaymentDetails(ctx, accountID)
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("service: failed to get payment details of %s: %w", accountID, err)
	}
	return details, nil
}

// SetCardDetails validates and stores the payment card of an account
func (s *AccountService) SetCardDetails(ctx context.Context, accountID string, card models.CardDetails) (models.CardDetails, error) {
	card.AccountID = accountID
	card.CardNumber = strings.ReplaceAll(strings.TrimSpace(card.CardNumber), " ", "")
	card.HolderName = strings.TrimSpace(card.HolderName)
	if err := card.Validate(); err != nil {
		return models.CardDetails{}, fmt.Errorf("service: %w", err)
	}
	if err := s.repo.SetCardDetails(ctx, card); err != nil {
		return models.CardDetails{}, fmt.Errorf("service: failed to set card details of %s: %w", accountID, err)
	}
	utils.Info("card details updated", map[string]any{"account_id": accountID, "card": card.MaskedNumber()})
	return card, nil
}

// SetPayPalDetails stores the PayPal login of an account
func (s *AccountService) SetPayPalDetails(ctx context.Context, accountID, email string) (models.PayPalDetails, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return models.PayPalDetails{}, fmt.Errorf("service: %w - invalid paypal email", auctionerrors.ErrInvalidInput)
	}
	paypal := models.PayPalDetails{AccountID: accountID, Email: email}
	if err := s.repo.SetPayPalDetails(ctx, paypal); err != nil {
		return models.PayPalDetails{}, fmt.Errorf("service: failed to set paypal details of %s: %w", accountID, err)
	}
	utils.Info("paypal details updated", map[string]any{"account_id": accountID})
	return paypal, nil
}
