package accounts

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/mail"
	"strings"

	"bluepenguin/internal/auth"
	"bluepenguin/internal/repository"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// DefaultIcons are the avatars handed out to new profiles
var DefaultIcons = []string{
	"/static/avatars/penguin-blue.png",
	"/static/avatars/penguin-red.png",
	"/static/avatars/penguin-green.png",
	"/static/avatars/penguin-yellow.png",
	"/static/avatars/penguin-purple.png",
}

// AccountService implements registration, sign-in, account settings, balances and profiles
type AccountService struct {
	repo     repository.AccountStore
	sessions *auth.SessionStore
	clock    utils.Clock
	fine     float64
}

// NewAccountService creates a new AccountService. fine is the amount a suspended account pays to be reinstated.
func NewAccountService(repo repository.AccountStore, sessions *auth.SessionStore, clock utils.Clock, fine float64) *AccountService {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &AccountService{repo: repo, sessions: sessions, clock: clock, fine: fine}
}

// RegisterInput is the sign-up form
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Registration is a freshly created account with its profile
type Registration struct {
	Account models.Account `json:"account"`
	Profile models.Profile `json:"profile"`
}

// Register creates a visitor account with a profile and a random avatar
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (Registration, error) {
	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	if _, err := mail.ParseAddress(email); err != nil {
		return Registration{}, fmt.Errorf("service: %w - invalid email", auctionerrors.ErrInvalidInput)
	}
	if username == "" {
		return Registration{}, fmt.Errorf("service: %w - username is required", auctionerrors.ErrInvalidInput)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Registration{}, fmt.Errorf("service: %w", err)
	}

	account := models.Account{
		AccountID:    utils.GenerateID(),
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		Status:       models.StatusVisitor,
		CreatedAt:    s.clock.Now(),
	}
	profile := models.Profile{
		ProfileID:   utils.GenerateID(),
		AccountID:   account.AccountID,
		DisplayName: username,
		DisplayIcon: DefaultIcons[rand.IntN(len(DefaultIcons))],
	}
	if err := s.repo.CreateAccount(ctx, account, profile); err != nil {
		return Registration{}, fmt.Errorf("service: failed to register %s: %w", username, err)
	}

	utils.Info("account registered", map[string]any{"account_id": account.AccountID, "profile_id": profile.ProfileID})
	return Registration{Account: account, Profile: profile}, nil
}

// SignIn checks credentials and opens a session
func (s *AccountService) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	account, err := s.repo.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, auctionerrors.ErrNotFound) {
		return auth.Session{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("service: failed to load account: %w", err)
	}
	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		return auth.Session{}, fmt.Errorf("service: %w", err)
	}
	if account.QuitRequested {
		return auth.Session{}, fmt.Errorf("service: %w - account was closed", auctionerrors.ErrForbidden)
	}
	if account.Removed() {
		return auth.Session{}, fmt.Errorf("service: %w - account was removed after repeated suspensions", auctionerrors.ErrForbidden)
	}

	profile, err := s.repo.GetProfileByAccount(ctx, account.AccountID)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service: failed to load profile: %w", err)
	}
	session := s.sessions.Create(account.AccountID, profile.ProfileID)
	utils.Info("signed in", map[string]any{"account_id": account.AccountID})
	return session, nil
}

// SignOut ends the session identified by token
func (s *AccountService) SignOut(token string) {
	s.sessions.Revoke(token)
}

// GetAccount returns the caller's own account
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("service: failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

// SettingsInput holds account fields to change; nil fields are left alone
type SettingsInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Password  *string
}

// UpdateSettings changes names, username or password of an account
func (s *AccountService) UpdateSettings(ctx context.Context, accountID string, in SettingsInput) (models.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return models.Account{}, err
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return models.Account{}, fmt.Errorf("service: %w - username cannot be empty", auctionerrors.ErrInvalidInput)
		}
		account.Username = username
	}
	if in.FirstName != nil {
		account.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		account.LastName = strings.TrimSpace(*in.LastName)
	}
	account.PasswordHash = ""
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.Account{}, fmt.Errorf("service: %w", err)
		}
		account.PasswordHash = hash
	}

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("service: failed to update account %s: %w", accountID, err)
	}
	return s.GetAccount(ctx, accountID)
}

// Balance returns the spendable balance of an account
func (s *AccountService) Balance(ctx context.Context, accountID string) (float64, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// AddBalance deposits a positive amount. A large enough balance can make the account a VIP.
func (s *AccountService) AddBalance(ctx context.Context, accountID string, amount float64) (models.Account, error) {
	if amount <= 0 {
		return models.Account{}, fmt.Errorf("service: %w - deposit must be positive", auctionerrors.ErrInvalidInput)
	}
	account, err := s.repo.AdjustBalance(ctx, accountID, amount)
	if err != nil {
		return models.Account{}, fmt.Errorf("service: failed to add balance to %s: %w", accountID, err)
	}
	return s.reviewVIP(ctx, account), nil
}

// reviewVIP re-evaluates VIP status. Failures are logged and the given account is returned.
func (s *AccountService) reviewVIP(ctx context.Context, account models.Account) models.Account {
	reviewed, err := s.repo.ReviewVIPStatus(ctx, account.AccountID)
	if err != nil {
		utils.Error("vip review failed", map[string]any{"account_id": account.AccountID, "error": err.Error()})
		return account
	}
	if reviewed.Status != account.Status {
		utils.Info("vip status changed", map[string]any{"account_id": account.AccountID, "from": account.Status, "to": reviewed.Status})
	}
	return reviewed
}

// SetShippingAddress stores where won items are delivered
func (s *AccountService) SetShippingAddress(ctx context.Context, accountID string, address models.ShippingAddress) (models.ShippingAddress, error) {
	address.AccountID = accountID
	address.StreetAddress = strings.TrimSpace(address.StreetAddress)
	address.City = strings.TrimSpace(address.City)
	address.Country = strings.TrimSpace(address.Country)
	if address.StreetAddress == "" || address.City == "" || address.Country == "" {
		return models.ShippingAddress{}, fmt.Errorf("service: %w - street, city and country are required", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.SetShippingAddress(ctx, address); err != nil {
		return models.ShippingAddress{}, fmt.Errorf("service: failed to set address of %s: %w", accountID, err)
	}
	return address, nil
}

// GetShippingAddress returns the delivery address of an account
func (s *AccountService) GetShippingAddress(ctx context.Context, accountID string) (models.ShippingAddress, error) {
	address, err := s.repo.GetShippingAddress(ctx, accountID)
	if err != nil {
		return models.ShippingAddress{}, fmt.Errorf("service: failed to get address of %s: %w", accountID, err)
	}
	return address, nil
}

// ApplyToBeUser promotes a visitor so they can bid and list items
func (s *AccountService) ApplyToBeUser(ctx context.Context, accountID string) (models.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return models.Account{}, err
	}
	if account.IsSuspended {
		return models.Account{}, fmt.Errorf("service: %w", auctionerrors.ErrAccountSuspended)
	}
	if account.Status != models.StatusVisitor {
		return models.Account{}, fmt.Errorf("service: %w - account is already %s", auctionerrors.ErrInvalidState, account.Status)
	}

	account.Status = models.StatusUser
	return s.save(ctx, account)
}

// PaySuspensionFine deducts the fine from the balance and lifts the suspension
func (s *AccountService) PaySuspensionFine(ctx context.Context, accountID string) (models.Account, error) {
	account, err := s.repo.PayFine(ctx, accountID, s.fine)
	if err != nil {
		return models.Account{}, fmt.Errorf("service: failed to pay suspension fine of %s: %w", accountID, err)
	}
	utils.Info("suspension fine paid", map[string]any{"account_id": accountID, "fine": s.fine})
	return s.reviewVIP(ctx, account), nil
}

// RequestQuit flags the account for removal and ends its sessions
func (s *AccountService) RequestQuit(ctx context.Context, accountID string) (models.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return models.Account{}, err
	}
	account.QuitRequested = true
	account, err = s.save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}
	s.sessions.RevokeAccount(accountID)
	return account, nil
}

func (s *AccountService) save(ctx context.Context, account models.Account) (models.Account, error) {
	account.PasswordHash = ""
	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("service: failed to update account %s: %w", account.AccountID, err)
	}
	return s.GetAccount(ctx, account.AccountID)
}
