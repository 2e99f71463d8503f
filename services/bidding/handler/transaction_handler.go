package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

//go:generate mockgen -destination=mock_transaction_service.go -package=handler . TransactionServiceInterface

type TransactionServiceInterface interface {
	AcceptWin(ctx context.Context, transactionID, sellerProfileID string) (models.Transaction, error)
	RejectWin(ctx context.Context, transactionID, sellerProfileID string) (models.Rejection, error)
	ShipItem(ctx context.Context, transactionID, sellerProfileID, carrier string, eta *time.Time) (models.Transaction, error)
	MarkReceived(ctx context.Context, transactionID, buyerProfileID string) (models.Transaction, error)
	ListSellerTransactions(ctx context.Context, sellerProfileID string) ([]models.Transaction, error)
	ListAwaitingArrivals(ctx context.Context, buyerProfileID string) ([]models.Transaction, error)
	NextActions(ctx context.Context, sellerProfileID string) ([]models.Transaction, error)
}

type TransactionHandler struct {
	service TransactionServiceInterface
}

func NewTransactionHandler(service TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// AcceptWinnerHandler handles POST /api/transactions/:transaction_id/accept
func (h *TransactionHandler) AcceptWinnerHandler(c *gin.Context) {
	h.transition(c, "AcceptWinnerHandler", "winner accepted", func(ctx context.Context, id, profileID string) (any, error) {
		return h.service.AcceptWin(ctx, id, profileID)
	})
}

// RejectWinnerHandler handles POST /api/transactions/:transaction_id/reject
func (h *TransactionHandler) RejectWinnerHandler(c *gin.Context) {
	h.transition(c, "RejectWinnerHandler", "winner rejected", func(ctx context.Context, id, profileID string) (any, error) {
		return h.service.RejectWin(ctx, id, profileID)
	})
}

// MarkReceivedHandler handles POST /api/transactions/:transaction_id/received
func (h *TransactionHandler) MarkReceivedHandler(c *gin.Context) {
	h.transition(c, "MarkReceivedHandler", "item marked as received", func(ctx context.Context, id, profileID string) (any, error) {
		return h.service.MarkReceived(ctx, id, profileID)
	})
}

// ShipItemHandler handles POST /api/transactions/:transaction_id/ship
func (h *TransactionHandler) ShipItemHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "ShipItemHandler")
	if !ok {
		return
	}
	var req api.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ShipItemHandler", err)
		return
	}

	txnID := c.Param("transaction_id")
	txn, err := h.service.ShipItem(c.Request.Context(), txnID, session.ProfileID, req.Carrier, req.EstimatedDelivery)
	if err != nil {
		helpers.RespondError(c, "ShipItemHandler", err, map[string]any{"transaction_id": txnID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, txn, "item shipped")
	helpers.LogSuccess("ShipItemHandler", "item shipped", map[string]any{"transaction_id": txnID, "carrier": txn.Carrier})
}

// ListSalesHandler handles GET /api/transactions/sales
func (h *TransactionHandler) ListSalesHandler(c *gin.Context) {
	h.list(c, "ListSalesHandler", "sales retrieved successfully", h.service.ListSellerTransactions)
}

// ListArrivalsHandler handles GET /api/transactions/arrivals
func (h *TransactionHandler) ListArrivalsHandler(c *gin.Context) {
	h.list(c, "ListArrivalsHandler", "awaiting arrivals retrieved successfully", h.service.ListAwaitingArrivals)
}

// NextActionsHandler handles GET /api/transactions/next-actions
func (h *TransactionHandler) NextActionsHandler(c *gin.Context) {
	h.list(c, "NextActionsHandler", "next actions retrieved successfully", h.service.NextActions)
}

func (h *TransactionHandler) transition(c *gin.Context, name, message string, apply func(ctx context.Context, id, profileID string) (any, error)) {
	session, ok := helpers.CurrentSession(c, name)
	if !ok {
		return
	}
	txnID := c.Param("transaction_id")
	result, err := apply(c.Request.Context(), txnID, session.ProfileID)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"transaction_id": txnID, "profile_id": session.ProfileID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, message)
	helpers.LogSuccess(name, message, map[string]any{"transaction_id": txnID, "profile_id": session.ProfileID})
}

func (h *TransactionHandler) list(c *gin.Context, name, message string, fetch func(ctx context.Context, profileID string) ([]models.Transaction, error)) {
	session, ok := helpers.CurrentSession(c, name)
	if !ok {
		return
	}
	txns, err := fetch(c.Request.Context(), session.ProfileID)
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"profile_id": session.ProfileID})
		return
	}

	if txns == nil {
		txns = []models.Transaction{}
	}
	utils.JSONResponse(c, http.StatusOK, txns, message)
	helpers.LogSuccess(name, message, map[string]any{"profile_id": session.ProfileID, "count": len(txns)})
}
