package client

import (
	"context"
	"net/http"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
)

// Register creates a visitor account; it does not sign in
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (api.RegistrationResponse, error) {
	var reg api.RegistrationResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/register", false, req, &reg)
	return reg, err
}

// SignIn opens a session and keeps it on the client
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	var resp api.SessionResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", false, api.SignInRequest{Email: email, Password: password}, &resp); err != nil {
		return Session{}, err
	}
	c.SetSession(Session{
		Token:     resp.Token,
		AccountID: resp.AccountID,
		ProfileID: resp.ProfileID,
		IssuedAt:  c.clock.Now(),
	})

	account, err := c.Account(ctx)
	if err != nil {
		c.ClearSession()
		return Session{}, err
	}
	c.mu.Lock()
	c.session.Status = account.Status
	session := *c.session
	c.mu.Unlock()
	return session, nil
}

// SignOut ends the session on the server and forgets it locally
func (c *Client) SignOut(ctx context.Context) error {
	defer c.ClearSession()
	if _, ok := c.Session(); !ok {
		return nil
	}
	return c.call(ctx, http.MethodPost, "/api/auth/logout", true, nil, nil)
}

func (c *Client) Account(ctx context.Context) (models.Account, error) {
	var account models.Account
	err := c.call(ctx, http.MethodGet, "/api/accounts/me", true, nil, &account)
	return account, err
}

func (c *Client) UpdateSettings(ctx context.Context, req api.SettingsRequest) (models.Account, error) {
	var account models.Account
	err := c.call(ctx, http.MethodPatch, "/api/accounts/me", true, req, &account)
	return account, err
}

func (c *Client) Balance(ctx context.Context) (float64, error) {
	var resp api.BalanceResponse
	err := c.call(ctx, http.MethodGet, "/api/accounts/me/balance", true, nil, &resp)
	return resp.Balance, err
}

func (c *Client) AddBalance(ctx context.Context, amount float64) (float64, error) {
	var resp api.BalanceResponse
	err := c.call(ctx, http.MethodPost, "/api/accounts/me/balance", true, api.BalanceRequest{Amount: amount}, &resp)
	return resp.Balance, err
}

func (c *Client) ShippingAddress(ctx context.Context) (models.ShippingAddress, error) {
	var address models.ShippingAddress
	err := c.call(ctx, http.MethodGet, "/api/accounts/me/address", true, nil, &address)
	return address, err
}

func (c *Client) SetShippingAddress(ctx context.Context, req api.AddressRequest) (models.ShippingAddress, error) {
	var address models.ShippingAddress
	err := c.call(ctx, http.MethodPut, "/api/accounts/me/address", true, req, &address)
	return address, err
}

// ApplyToBeUser upgrades a visitor and refreshes the cached status
func (c *Client) ApplyToBeUser(ctx context.Context) (models.Account, error) {
	return c.statusChange(ctx, "/api/accounts/me/apply-user")
}

func (c *Client) PaySuspensionFine(ctx context.Context) (models.Account, error) {
	return c.statusChange(ctx, "/api/accounts/me/pay-fine")
}

// RequestQuit flags the account for removal; the server revokes every session so the local one is dropped too
func (c *Client) RequestQuit(ctx context.Context) (models.Account, error) {
	account, err := c.statusChange(ctx, "/api/accounts/me/quit")
	if err == nil {
		c.ClearSession()
	}
	return account, err
}

func (c *Client) statusChange(ctx context.Context, path string) (models.Account, error) {
	var account models.Account
	if err := c.call(ctx, http.MethodPost, path, true, nil, &account); err != nil {
		return models.Account{}, err
	}
	c.mu.Lock()
	if c.session != nil {
		c.session.Status = account.Status
	}
	c.mu.Unlock()
	return account, nil
}

func (c *Client) Profile(ctx context.Context, profileID string) (models.Profile, error) {
	var profile models.Profile
	err := c.call(ctx, http.MethodGet, "/api/profiles/"+profileID, false, nil, &profile)
	return profile, err
}

func (c *Client) OwnProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := c.call(ctx, http.MethodGet, "/api/profiles/me", true, nil, &profile)
	return profile, err
}

func (c *Client) EditProfile(ctx context.Context, req api.ProfileRequest) (models.Profile, error) {
	var profile models.Profile
	err := c.call(ctx, http.MethodPatch, "/api/profiles/me", true, req, &profile)
	return profile, err
}

func (c *Client) RateProfile(ctx context.Context, profileID string, score int) (models.Profile, error) {
	var profile models.Profile
	err := c.call(ctx, http.MethodPost, "/api/profiles/"+profileID+"/rate", true, api.RateRequest{Score: score}, &profile)
	return profile, err
}

// ReportProfile files a complaint against another profile
func (c *Client) ReportProfile(ctx context.Context, profileID, text string) (models.Report, error) {
	var report models.Report
	err := c.call(ctx, http.MethodPost, "/api/profiles/"+profileID+"/report", true, api.ReportRequest{Text: text}, &report)
	return report, err
}

// PaymentDetails returns the payment methods on file; card numbers come back masked
func (c *Client) PaymentDetails(ctx context.Context) (api.PaymentDetailsResponse, error) {
	var details api.PaymentDetailsResponse
	err := c.call(ctx, http.MethodGet, "/api/accounts/me/payment", true, nil, &details)
	return details, err
}

func (c *Client) UpdateCardDetails(ctx context.Context, req api.CardDetailsRequest) (api.CardDetailsResponse, error) {
	var card api.CardDetailsResponse
	err := c.call(ctx, http.MethodPatch, "/api/accounts/me/card", true, req, &card)
	return card, err
}

func (c *Client) UpdatePayPalDetails(ctx context.Context, email string) (models.PayPalDetails, error) {
	var paypal models.PayPalDetails
	err := c.call(ctx, http.MethodPatch, "/api/accounts/me/paypal", true, api.PayPalRequest{Email: email}, &paypal)
	return paypal, err
}
