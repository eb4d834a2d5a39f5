package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/quorumpoint/qp-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Point mutation endpoints (requires authentication)
		v1.POST("/points/earn", middleware.Auth(authCfg), handler.EarnPoints)
		v1.POST("/points/convert", middleware.Auth(authCfg), handler.ConvertPoints)
		v1.POST("/points/exchange", middleware.Auth(authCfg), handler.ExchangePoints)

		// Balance and ledger endpoints (public read access)
		v1.GET("/balances/:user_id", handler.GetBalance)
		v1.GET("/users/:user_id/ledger", handler.ListLedgerEntries)

		// Ratio endpoints (reads public, updates require API key)
		v1.GET("/ratios", handler.GetRatios)
		v1.PUT("/ratios", middleware.APIKeyAuth(authCfg), handler.UpdateRatios)

		// Proposal endpoints (reads public, writes require authentication)
		v1.GET("/proposals", handler.ListProposals)
		v1.GET("/proposals/:id", handler.GetProposal)
		v1.POST("/proposals", middleware.Auth(authCfg), handler.CreateProposal)
		v1.POST("/proposals/:id/execute", middleware.APIKeyAuth(authCfg), handler.ExecuteProposal)
		v1.POST("/proposals/:id/cancel", middleware.APIKeyAuth(authCfg), handler.CancelProposal)

		// Vote endpoints (reads public, casting requires authentication)
		v1.GET("/proposals/:id/votes", handler.ListVotes)
		v1.GET("/proposals/:id/tally", handler.GetTally)
		v1.POST("/proposals/:id/votes", middleware.Auth(authCfg), handler.CastVote)
	}
}
