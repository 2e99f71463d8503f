package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	accounts "bluepenguin/internal/accountService"
	"bluepenguin/internal/auth"
	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

//go:generate mockgen -destination=mock_account_service.go -package=handler . AccountServiceInterface

type AccountServiceInterface interface {
	Register(ctx context.Context, in accounts.RegisterInput) (accounts.Registration, error)
	SignIn(ctx context.Context, email, password string) (auth.Session, error)
	SignOut(token string)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)
	UpdateSettings(ctx context.Context, accountID string, in accounts.SettingsInput) (models.Account, error)
	Balance(ctx context.Context, accountID string) (float64, error)
	AddBalance(ctx context.Context, accountID string, amount float64) (models.Account, error)
	SetShippingAddress(ctx context.Context, accountID string, address models.ShippingAddress) (models.ShippingAddress, error)
	GetShippingAddress(ctx context.Context, accountID string) (models.ShippingAddress, error)
	ApplyToBeUser(ctx context.Context, accountID string) (models.Account, error)
	PaySuspensionFine(ctx context.Context, accountID string) (models.Account, error)
	RequestQuit(ctx context.Context, accountID string) (models.Account, error)
	GetPaymentDetails(ctx context.Context, accountID string) (models.PaymentDetails, error)
	SetCardDetails(ctx context.Context, accountID string, card models.CardDetails) (models.CardDetails, error)
	SetPayPalDetails(ctx context.Context, accountID, email string) (models.PayPalDetails, error)

	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	GetOwnProfile(ctx context.Context, accountID string) (models.Profile, error)
	EditProfile(ctx context.Context, accountID string, in accounts.ProfileInput) (models.Profile, error)
	RateProfile(ctx context.Context, raterProfileID, rateeProfileID string, score int) (models.Profile, error)
	ReportProfile(ctx context.Context, reporterProfileID, reporteeProfileID, text string) (models.Report, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /api/auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	reg, err := h.service.Register(c.Request.Context(), accounts.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, reg, "account registered successfully")
	helpers.LogSuccess("RegisterHandler", "account registered successfully", map[string]any{
		"account_id": reg.Account.AccountID,
		"profile_id": reg.Profile.ProfileID,
	})
}

// SignInHandler handles POST /api/auth/login
func (h *AccountHandler) SignInHandler(c *gin.Context) {
	var req api.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignInHandler", err)
		return
	}

	session, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "SignInHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(session), "signed in successfully")
	helpers.LogSuccess("SignInHandler", "signed in successfully", map[string]any{"account_id": session.AccountID})
}

// SignOutHandler handles POST /api/auth/logout
func (h *AccountHandler) SignOutHandler(c *gin.Context) {
	token := auth.TokenFromRequest(c)
	if token != "" {
		h.service.SignOut(token)
	}
	utils.JSONResponse(c, http.StatusOK, nil, "signed out successfully")
}

// GetAccountHandler handles GET /api/accounts/me
func (h *AccountHandler) GetAccountHandler(c *gin.Context) {
	account(c, "GetAccountHandler", "account retrieved successfully", h.service.GetAccount)
}

// UpdateSettingsHandler handles PATCH /api/accounts/me
func (h *AccountHandler) UpdateSettingsHandler(c *gin.Context) {
	var req api.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateSettingsHandler", err)
		return
	}
	account(c, "UpdateSettingsHandler", "settings updated successfully", func(ctx context.Context, accountID string) (models.Account, error) {
		return h.service.UpdateSettings(ctx, accountID, accounts.SettingsInput{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
	})
}

// GetBalanceHandler handles GET /api/accounts/me/balance
func (h *AccountHandler) GetBalanceHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "GetBalanceHandler")
	if !ok {
		return
	}
	balance, err := h.service.Balance(c.Request.Context(), session.AccountID)
	if err != nil {
		helpers.RespondError(c, "GetBalanceHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, api.BalanceResponse{AccountID: session.AccountID, Balance: balance}, "balance retrieved successfully")
}

// AddBalanceHandler handles POST /api/accounts/me/balance
func (h *AccountHandler) AddBalanceHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "AddBalanceHandler")
	if !ok {
		return
	}
	var req api.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddBalanceHandler", err)
		return
	}

	acc, err := h.service.AddBalance(c.Request.Context(), session.AccountID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "AddBalanceHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, api.BalanceResponse{AccountID: acc.AccountID, Balance: acc.Balance}, "balance added successfully")
	helpers.LogSuccess("AddBalanceHandler", "balance added successfully", map[string]any{
		"account_id": acc.AccountID,
		"amount":     req.Amount,
	})
}

// GetAddressHandler handles GET /api/accounts/me/address
func (h *AccountHandler) GetAddressHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "GetAddressHandler")
	if !ok {
		return
	}
	address, err := h.service.GetShippingAddress(c.Request.Context(), session.AccountID)
	if err != nil {
		helpers.RespondError(c, "GetAddressHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, address, "shipping address retrieved successfully")
}

// SetAddressHandler handles PUT /api/accounts/me/address
func (h *AccountHandler) SetAddressHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "SetAddressHandler")
	if !ok {
		return
	}
	var req api.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAddressHandler", err)
		return
	}

	address, err := h.service.SetShippingAddress(c.Request.Context(), session.AccountID, models.ShippingAddress{
		StreetAddress: req.StreetAddress,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		Country:       req.Country,
	})
	if err != nil {
		helpers.RespondError(c, "SetAddressHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, address, "shipping address saved successfully")
}

// ApplyUserHandler handles POST /api/accounts/me/apply-user
func (h *AccountHandler) ApplyUserHandler(c *gin.Context) {
	account(c, "ApplyUserHandler", "account upgraded to user", h.service.ApplyToBeUser)
}

// PayFineHandler handles POST /api/accounts/me/pay-fine
func (h *AccountHandler) PayFineHandler(c *gin.Context) {
	account(c, "PayFineHandler", "suspension fine paid", h.service.PaySuspensionFine)
}

// QuitHandler handles POST /api/accounts/me/quit
func (h *AccountHandler) QuitHandler(c *gin.Context) {
	account(c, "QuitHandler", "quit request recorded", h.service.RequestQuit)
}

// GetPaymentDetailsHandler handles GET /api/accounts/me/payment
func (h *AccountHandler) GetPaymentDetailsHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "GetPaymentDetailsHandler")
	if !ok {
		return
	}
	details, err := h.service.GetPaymentDetails(c.Request.Context(), session.AccountID)
	if err != nil {
		helpers.RespondError(c, "GetPaymentDetailsHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, api.NewPaymentDetailsResponse(details), "payment details retrieved successfully")
}

// UpdateCardDetailsHandler handles PATCH /api/accounts/me/card
func (h *AccountHandler) UpdateCardDetailsHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "UpdateCardDetailsHandler")
	if !ok {
		return
	}
	var req api.CardDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCardDetailsHandler", err)
		return
	}

	card, err := h.service.SetCardDetails(c.Request.Context(), session.AccountID, models.CardDetails{
		CardNumber:  req.CardNumber,
		HolderName:  req.HolderName,
		ExpireMonth: req.ExpireMonth,
		ExpireYear:  req.ExpireYear,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateCardDetailsHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, api.NewCardDetailsResponse(card), "card details updated successfully")
	helpers.LogSuccess("UpdateCardDetailsHandler", "card details updated successfully", map[string]any{"account_id": session.AccountID})
}

// UpdatePayPalDetailsHandler handles PATCH /api/accounts/me/paypal
func (h *AccountHandler) UpdatePayPalDetailsHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "UpdatePayPalDetailsHandler")
	if !ok {
		return
	}
	var req api.PayPalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePayPalDetailsHandler", err)
		return
	}

	paypal, err := h.service.SetPayPalDetails(c.Request.Context(), session.AccountID, req.Email)
	if err != nil {
		helpers.RespondError(c, "UpdatePayPalDetailsHandler", err, map[string]any{"account_id": session.AccountID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, paypal, "paypal details updated successfully")
	helpers.LogSuccess("UpdatePayPalDetailsHandler", "paypal details updated successfully", map[string]any{"account_id": session.AccountID})
}

// account runs an operation on the caller's own account and answers with the result
func account(c *gin.Context, name, message string, op func(ctx context.Context, accountID string) (models.Account, error)) {
	session, ok := helpers.CurrentSession(c, name)
	if !ok {
		return
	}
	acc, err := op(c.Request.Context(), session.AccountID)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"account_id": session.AccountID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, acc, message)
	helpers.LogSuccess(name, message, map[string]any{"account_id": acc.AccountID, "status": acc.Status})
}
