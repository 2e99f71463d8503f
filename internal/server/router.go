package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bluepenguin/internal/auth"
	"bluepenguin/internal/metrics"
	accountHandler "bluepenguin/services/accounts/handler"
	biddingHandler "bluepenguin/services/bidding/handler"
	marketHandler "bluepenguin/services/market/handler"
	"bluepenguin/utils"
)

// Pinger reports whether the storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the services the router dispatches to
type Dependencies struct {
	Bidding      biddingHandler.BiddingServiceInterface
	Transactions biddingHandler.TransactionServiceInterface
	Market       marketHandler.MarketServiceInterface
	Accounts     accountHandler.AccountServiceInterface
	Sessions     *auth.SessionStore
	Metrics      *metrics.Metrics
	Storage      Pinger
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware(deps.Metrics))

	bids := biddingHandler.NewBiddingHandler(deps.Bidding)
	txns := biddingHandler.NewTransactionHandler(deps.Transactions)
	market := marketHandler.NewMarketHandler(deps.Market)
	accounts := accountHandler.NewAccountHandler(deps.Accounts)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := router.Group("/api")
	api.GET("/ping", pingHandler(deps.Storage))

	// public routes
	{
		api.POST("/auth/register", accounts.RegisterHandler)
		api.POST("/auth/login", accounts.SignInHandler)
		api.POST("/auth/logout", accounts.SignOutHandler)

		api.GET("/items", market.SearchItemsHandler)
		api.GET("/items/:item_id", market.GetItemHandler)
		api.GET("/items/:item_id/bids", bids.GetBidsByItemHandler)
		api.GET("/items/:item_id/winning-bid", bids.GetWinningBidHandler)
		api.GET("/items/:item_id/comments", market.ListCommentsHandler)
		api.GET("/items/:item_id/comments/:comment_id/replies", market.ListRepliesHandler)

		api.GET("/explore/trending", market.TrendingHandler)
		api.GET("/explore/recent-bids", market.RecentBidsHandler)
		api.GET("/explore/popular", market.PopularHandler)
		api.GET("/explore/best-deals", market.BestDealsHandler)
		api.GET("/explore/by-rating", market.ByRatingHandler)

		api.GET("/profiles/:profile_id", accounts.GetProfileHandler)
	}

	protected := api.Group("", auth.RequireSession(deps.Sessions))

	items := protected.Group("/items")
	{
		items.POST("", market.PostItemHandler)
		items.DELETE("/:item_id", market.DeleteItemHandler)
		items.PATCH("/:item_id/deadline", market.ChangeDeadlineHandler)
		items.POST("/:item_id/perform-bid", bids.PlaceBidHandler)
		items.POST("/:item_id/close", bids.CloseAuctionHandler)
		items.POST("/:item_id/comments", market.PostCommentHandler)
		items.DELETE("/:item_id/comments/:comment_id", market.DeleteCommentHandler)
		items.POST("/:item_id/comments/:comment_id/reactions", market.ReactHandler)
	}

	me := protected.Group("/accounts/me")
	{
		me.GET("", accounts.GetAccountHandler)
		me.PATCH("", accounts.UpdateSettingsHandler)
		me.GET("/balance", accounts.GetBalanceHandler)
		me.POST("/balance", accounts.AddBalanceHandler)
		me.GET("/address", accounts.GetAddressHandler)
		me.PUT("/address", accounts.SetAddressHandler)
		me.POST("/apply-user", accounts.ApplyUserHandler)
		me.POST("/pay-fine", accounts.PayFineHandler)
		me.POST("/quit", accounts.QuitHandler)
		me.GET("/payment", accounts.GetPaymentDetailsHandler)
		me.PATCH("/card", accounts.UpdateCardDetailsHandler)
		me.PATCH("/paypal", accounts.UpdatePayPalDetailsHandler)
		me.GET("/pending-bids", bids.GetPendingBidsHandler)
		me.GET("/saved-items", market.ListSavedItemsHandler)
		me.POST("/saved-items/:item_id", market.SaveItemHandler)
		me.DELETE("/saved-items/:item_id", market.DeleteSavedItemHandler)
	}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", accounts.GetOwnProfileHandler)
		profiles.PATCH("/me", accounts.EditProfileHandler)
		profiles.POST("/:profile_id/rate", accounts.RateProfileHandler)
		profiles.POST("/:profile_id/report", accounts.ReportProfileHandler)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("/sales", txns.ListSalesHandler)
		transactions.GET("/arrivals", txns.ListArrivalsHandler)
		transactions.GET("/next-actions", txns.NextActionsHandler)
		transactions.POST("/:transaction_id/accept", txns.AcceptWinnerHandler)
		transactions.POST("/:transaction_id/reject", txns.RejectWinnerHandler)
		transactions.POST("/:transaction_id/ship", txns.ShipItemHandler)
		transactions.POST("/:transaction_id/received", txns.MarkReceivedHandler)
	}

	return router
}

func pingHandler(storage Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if storage != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := storage.Ping(ctx); err != nil {
				utils.Error("storage ping failed", map[string]any{"error": err.Error()})
				utils.JSONError(c, http.StatusServiceUnavailable, err, "storage unavailable")
				return
			}
		}
		utils.JSONResponse(c, http.StatusOK, gin.H{"pong": true}, "service is healthy")
	}
}
