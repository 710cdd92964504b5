package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/stakevault/staking-ledger-service/docs"
	"github.com/stakevault/staking-ledger-service/internal/api/middlewares"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/deposit", registerHandler(handlers.Deposit))
	r.Post("/v1/redemption", registerHandler(handlers.RequestRedemption))
	r.Post("/v1/claim", registerHandler(handlers.FinalizeClaim))
	r.Get("/v1/account", registerHandler(handlers.GetAccount))
	r.Get("/v1/deposits", registerHandler(handlers.GetDeposits))
	r.Get("/v1/stats", registerHandler(handlers.GetLedgerStats))

	r.Group(func(admin chi.Router) {
		admin.Use(middlewares.AdminAuthMiddleware(a.cfg))
		admin.Post("/v1/admin/emergency-withdraw", registerHandler(handlers.EmergencyWithdraw))
		admin.Post("/v1/admin/lock", registerHandler(handlers.SetAccountLock))
		admin.Post("/v1/admin/cooldown", registerHandler(handlers.SetCooldownPeriod))
		admin.Post("/v1/admin/attestation-authority", registerHandler(handlers.SetAttestationAuthority))
		admin.Post("/v1/admin/pause", registerHandler(handlers.Pause))
		admin.Post("/v1/admin/unpause", registerHandler(handlers.Unpause))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
