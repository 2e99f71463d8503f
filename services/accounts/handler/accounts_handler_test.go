package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	accounts "bluepenguin/internal/accountService"
	"bluepenguin/internal/auth"
	"bluepenguin/pkg/api"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newRouter mounts every account route; a non-empty accountID signs the caller in as acc-<id> / p-<id>
func newRouter(m *MockAccountServiceInterface, accountID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAccountHandler(m)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if accountID != "" {
			session := auth.Session{Token: "tok", AccountID: accountID, ProfileID: "p-" + accountID}
			c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), session))
		}
		c.Next()
	})

	router.POST("/api/auth/register", h.RegisterHandler)
	router.POST("/api/auth/login", h.SignInHandler)
	router.POST("/api/auth/logout", h.SignOutHandler)

	me := router.Group("/api/accounts/me")
	{
		me.GET("", h.GetAccountHandler)
		me.PATCH("", h.UpdateSettingsHandler)
		me.GET("/balance", h.GetBalanceHandler)
		me.POST("/balance", h.AddBalanceHandler)
		me.GET("/address", h.GetAddressHandler)
		me.PUT("/address", h.SetAddressHandler)
		me.POST("/apply-user", h.ApplyUserHandler)
		me.POST("/pay-fine", h.PayFineHandler)
		me.POST("/quit", h.QuitHandler)
		me.GET("/payment", h.GetPaymentDetailsHandler)
		me.PATCH("/card", h.UpdateCardDetailsHandler)
		me.PATCH("/paypal", h.UpdatePayPalDetailsHandler)
	}
	profiles := router.Group("/api/profiles")
	{
		profiles.GET("/me", h.GetOwnProfileHandler)
		profiles.PATCH("/me", h.EditProfileHandler)
		profiles.GET("/:profile_id", h.GetProfileHandler)
		profiles.POST("/:profile_id/rate", h.RateProfileHandler)
		profiles.POST("/:profile_id/report", h.ReportProfileHandler)
	}
	return router
}

func send(t *testing.T, router *gin.Engine, method, path string, body any, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(m *MockAccountServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			body: map[string]any{"email": "alice@example.com", "username": "alice", "password": "correct-horse"},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Register(gomock.Any(), accounts.RegisterInput{Email: "alice@example.com", Username: "alice", Password: "correct-horse"}).
					Return(accounts.Registration{
						Account: models.Account{AccountID: "acc1", Status: models.StatusVisitor},
						Profile: models.Profile{ProfileID: "p1"},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "account registered successfully",
		},
		{
			name:           "short_password",
			body:           map[string]any{"email": "alice@example.com", "username": "alice", "password": "short"},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "bad_email",
			body:           map[string]any{"email": "alice", "username": "alice", "password": "correct-horse"},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "taken",
			body: map[string]any{"email": "alice@example.com", "username": "alice", "password": "correct-horse"},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(accounts.Registration{}, auctionerrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "resource already exists",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockAccountServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w, resp := send(t, newRouter(mockService, ""), http.MethodPost, "/api/auth/register", tc.body, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp.Message)
		})
	}
}

func TestSignInAndOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockAccountServiceInterface(ctrl)
	router := newRouter(mockService, "")
	expires := time.Date(2030, 1, 1, 2, 0, 0, 0, time.UTC)

	mockService.EXPECT().SignIn(gomock.Any(), "alice@example.com", "correct-horse").
		Return(auth.Session{Token: "tok", AccountID: "acc1", ProfileID: "p1", ExpiresAt: expires}, nil)
	w, resp := send(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "alice@example.com", "password": "correct-horse"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session api.SessionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &session))
	require.Equal(t, api.SessionResponse{Token: "tok", AccountID: "acc1", ProfileID: "p1", ExpiresAt: "2030-01-01T02:00:00Z"}, session)

	mockService.EXPECT().SignIn(gomock.Any(), "alice@example.com", "wrong").Return(auth.Session{}, auctionerrors.ErrInvalidCredentials)
	w, resp = send(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "alice@example.com", "password": "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid email or password", resp.Message)

	mockService.EXPECT().SignOut("tok")
	w, _ = send(t, router, http.MethodPost, "/api/auth/logout", nil, map[string]string{auth.HeaderName: "Bearer tok"})
	require.Equal(t, http.StatusOK, w.Code)

	// no token, nothing to revoke
	w, _ = send(t, router, http.MethodPost, "/api/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAccountOperations(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		mockSetup      func(m *MockAccountServiceInterface)
		expectedStatus int
	}{
		{
			name: "get_account", method: http.MethodGet, path: "/api/accounts/me",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().GetAccount(gomock.Any(), "alice").Return(models.Account{AccountID: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "update_username", method: http.MethodPatch, path: "/api/accounts/me", body: map[string]any{"username": "alice2"},
			mockSetup: func(m *MockAccountServiceInterface) {
				name := "alice2"
				m.EXPECT().UpdateSettings(gomock.Any(), "alice", accounts.SettingsInput{Username: &name}).Return(models.Account{AccountID: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "update_short_password", method: http.MethodPatch, path: "/api/accounts/me", body: map[string]any{"password": "abc"},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "get_balance", method: http.MethodGet, path: "/api/accounts/me/balance",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Balance(gomock.Any(), "alice").Return(12.5, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "add_balance", method: http.MethodPost, path: "/api/accounts/me/balance", body: map[string]any{"amount": 20},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().AddBalance(gomock.Any(), "alice", 20.0).Return(models.Account{AccountID: "alice", Balance: 32.5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "add_negative_balance", method: http.MethodPost, path: "/api/accounts/me/balance", body: map[string]any{"amount": -5},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_address", method: http.MethodGet, path: "/api/accounts/me/address",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().GetShippingAddress(gomock.Any(), "alice").Return(models.ShippingAddress{}, auctionerrors.ErrAddressNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "set_address", method: http.MethodPut, path: "/api/accounts/me/address",
			body: map[string]any{"street_address": "1 Ice Way", "city": "Hobart", "country": "AU"},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().SetShippingAddress(gomock.Any(), "alice", models.ShippingAddress{StreetAddress: "1 Ice Way", City: "Hobart", Country: "AU"}).
					Return(models.ShippingAddress{AccountID: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "apply_user_twice", method: http.MethodPost, path: "/api/accounts/me/apply-user",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().ApplyToBeUser(gomock.Any(), "alice").Return(models.Account{}, auctionerrors.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "pay_fine_without_funds", method: http.MethodPost, path: "/api/accounts/me/pay-fine",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().PaySuspensionFine(gomock.Any(), "alice").Return(models.Account{}, auctionerrors.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name: "quit", method: http.MethodPost, path: "/api/accounts/me/quit",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().RequestQuit(gomock.Any(), "alice").Return(models.Account{AccountID: "alice", QuitRequested: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockAccountServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w, _ := send(t, newRouter(mockService, "alice"), tc.method, tc.path, tc.body, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestAccountOperations_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(NewMockAccountServiceInterface(ctrl), "")

	for _, path := range []string{"/api/accounts/me", "/api/accounts/me/balance", "/api/profiles/me"} {
		w, resp := send(t, router, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
		require.Equal(t, "sign in required", resp.Message, path)
	}
}

func TestProfileHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockAccountServiceInterface(ctrl)
	router := newRouter(mockService, "alice")

	mockService.EXPECT().GetProfile(gomock.Any(), "p-bob").Return(models.Profile{ProfileID: "p-bob", AverageRating: 4}, nil)
	w, _ := send(t, router, http.MethodGet, "/api/profiles/p-bob", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().GetOwnProfile(gomock.Any(), "alice").Return(models.Profile{ProfileID: "p-alice"}, nil)
	w, _ = send(t, router, http.MethodGet, "/api/profiles/me", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	desc := "collector of odd things"
	mockService.EXPECT().EditProfile(gomock.Any(), "alice", accounts.ProfileInput{Description: &desc}).Return(models.Profile{ProfileID: "p-alice", Description: desc}, nil)
	w, _ = send(t, router, http.MethodPatch, "/api/profiles/me", map[string]any{"description": desc}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().RateProfile(gomock.Any(), "p-alice", "p-bob", 5).Return(models.Profile{ProfileID: "p-bob", RatingCount: 1, AverageRating: 5}, nil)
	w, resp := send(t, router, http.MethodPost, "/api/profiles/p-bob/rate", map[string]any{"score": 5}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(resp.Data, &profile))
	require.Equal(t, 5.0, profile.AverageRating)

	w, _ = send(t, router, http.MethodPost, "/api/profiles/p-bob/rate", map[string]any{"score": 9}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().RateProfile(gomock.Any(), "p-alice", "p-alice", 1).Return(models.Profile{}, auctionerrors.ErrForbidden)
	w, _ = send(t, router, http.MethodPost, "/api/profiles/p-alice/rate", map[string]any{"score": 1}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPaymentDetailsHandlers(t *testing.T) {
	card := models.CardDetails{AccountID: "alice", CardNumber: "4111111111111111", HolderName: "Alice", ExpireMonth: 4, ExpireYear: 2030}

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		mockSetup      func(m *MockAccountServiceInterface)
		expectedStatus int
		check          func(t *testing.T, resp envelope)
	}{
		{
			name: "get_masks_card_number", method: http.MethodGet, path: "/api/accounts/me/payment",
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().GetPaymentDetails(gomock.Any(), "alice").Return(models.PaymentDetails{Card: &card}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp envelope) {
				var details api.PaymentDetailsResponse
				require.NoError(t, json.Unmarshal(resp.Data, &details))
				require.Equal(t, "************1111", details.Card.CardNumber)
				require.Nil(t, details.PayPal)
				require.NotContains(t, string(resp.Data), "4111111111111111")
			},
		},
		{
			name: "update_card", method: http.MethodPatch, path: "/api/accounts/me/card",
			body: map[string]any{"card_number": "4111111111111111", "card_holder_name": "Alice", "expire_month": 4, "expire_year": 2030},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().SetCardDetails(gomock.Any(), "alice", models.CardDetails{
					CardNumber: "4111111111111111", HolderName: "Alice", ExpireMonth: 4, ExpireYear: 2030,
				}).Return(card, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "update_card_bad_month", method: http.MethodPatch, path: "/api/accounts/me/card",
			body:           map[string]any{"card_number": "4111111111111111", "card_holder_name": "Alice", "expire_month": 13, "expire_year": 2030},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "update_card_taken", method: http.MethodPatch, path: "/api/accounts/me/card",
			body: map[string]any{"card_number": "4111111111111111", "card_holder_name": "Alice", "expire_month": 4, "expire_year": 2030},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().SetCardDetails(gomock.Any(), "alice", gomock.Any()).Return(models.CardDetails{}, auctionerrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "update_paypal", method: http.MethodPatch, path: "/api/accounts/me/paypal",
			body: map[string]any{"paypal_email": "alice@paypal.example"},
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().SetPayPalDetails(gomock.Any(), "alice", "alice@paypal.example").
					Return(models.PayPalDetails{AccountID: "alice", Email: "alice@paypal.example"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "update_paypal_not_an_email", method: http.MethodPatch, path: "/api/accounts/me/paypal",
			body:           map[string]any{"paypal_email": "alice"},
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockAccountServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w, resp := send(t, newRouter(mockService, "alice"), tc.method, tc.path, tc.body, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.check != nil {
				tc.check(t, resp)
			}
		})
	}
}

func TestReportProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockAccountServiceInterface(ctrl)
	router := newRouter(mockService, "alice")

	mockService.EXPECT().ReportProfile(gomock.Any(), "p-alice", "p-bob", "never shipped").
		Return(models.Report{ReportID: "r1", ReporterProfileID: "p-alice", ReporteeProfileID: "p-bob", Status: models.ReportPending}, nil)
	w, resp := send(t, router, http.MethodPost, "/api/profiles/p-bob/report", map[string]any{"text": "never shipped"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var report models.Report
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	require.Equal(t, models.ReportPending, report.Status)

	w, _ = send(t, router, http.MethodPost, "/api/profiles/p-bob/report", map[string]any{"text": ""}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().ReportProfile(gomock.Any(), "p-alice", "p-alice", "me").Return(models.Report{}, auctionerrors.ErrForbidden)
	w, _ = send(t, router, http.MethodPost, "/api/profiles/p-alice/report", map[string]any{"text": "me"}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	anonymous := newRouter(NewMockAccountServiceInterface(ctrl), "")
	w, _ = send(t, anonymous, http.MethodPost, "/api/profiles/p-bob/report", map[string]any{"text": "x"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
