// ABOUTME: Declarative route table and mux assembly
// ABOUTME: Routes carry their auth requirement and rate limit class

package handlers

import (
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/token"
)

// LimitClass selects which rate limiter applies to a route.
type LimitClass int

const (
	LimitNone LimitClass = iota
	LimitAuth
	LimitRefresh
)

// Route defines one endpoint with its HTTP method, auth requirement and
// rate limit class.
type Route struct {
	Method    string
	Path      string
	Handler   http.HandlerFunc
	Protected bool
	Limit     LimitClass
}

// Routes returns all BFF routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},

		// Auth
		{Method: http.MethodPost, Path: "/auth/login", Handler: h.Login, Limit: LimitAuth},
		{Method: http.MethodPost, Path: "/auth/refresh", Handler: h.Refresh, Limit: LimitRefresh},
		{Method: http.MethodPost, Path: "/auth/logout", Handler: h.Logout},

		// Profile
		{Method: http.MethodGet, Path: "/profil", Handler: h.Profile, Protected: true},
		{Method: http.MethodPut, Path: "/profil/address", Handler: h.UpdateAddress, Protected: true},
		{Method: http.MethodPut, Path: "/profil/email", Handler: h.UpdateEmail, Protected: true},
		{Method: http.MethodPut, Path: "/profil/phone", Handler: h.UpdatePhone, Protected: true},

		// Contracts
		{Method: http.MethodGet, Path: "/contrats/{scont}/detail", Handler: h.ContractDetail, Protected: true},
		{Method: http.MethodGet, Path: "/contrats/{scont}/operations", Handler: h.ContractOperations, Protected: true},
		{Method: http.MethodGet, Path: "/contrats/{scont}/operations/{idMouvement}", Handler: h.ContractOperationDetail, Protected: true},
		{Method: http.MethodGet, Path: "/contrats/{scont}/versement", Handler: h.ContractVersement, Protected: true},
		{Method: http.MethodGet, Path: "/contrats/{scont}/options-financieres", Handler: h.ContractFinancialOptions, Protected: true},

		// Actions
		{Method: http.MethodPost, Path: "/actions/versement", Handler: h.MakePayment, Protected: true},
		{Method: http.MethodPost, Path: "/actions/arbitrage", Handler: h.MakeArbitrage, Protected: true},
		{Method: http.MethodGet, Path: "/actions/arbitrage/{contrat}", Handler: h.GetArbitrage, Protected: true},
		{Method: http.MethodPost, Path: "/actions/modifier-versement-programme", Handler: h.UpdateScheduledPayment, Protected: true},
		{Method: http.MethodPost, Path: "/actions/supprimer-versement-mensuel/{scont}", Handler: h.DeleteScheduledPayment, Protected: true},
		{Method: http.MethodPost, Path: "/actions/modifier-option-financiere/{scont}", Handler: h.UpdateFinancialOption, Protected: true},
		{Method: http.MethodPost, Path: "/actions/modifier-age-retraite", Handler: h.UpdateRetirementAge, Protected: true},
		{Method: http.MethodPost, Path: "/actions/representation-prelevement", Handler: h.RepresentPayment, Protected: true},

		// Dashboard
		{Method: http.MethodGet, Path: "/dashboard/synthese", Handler: h.Synthese, Protected: true},

		// Documents
		{Method: http.MethodGet, Path: "/documents", Handler: h.Documents, Protected: true},
		{Method: http.MethodPost, Path: "/documents/{id}/mark-read", Handler: h.MarkDocumentRead, Protected: true},
		{Method: http.MethodPost, Path: "/documents/{id}/sign", Handler: h.SignDocument, Protected: true},

		// Notifications
		{Method: http.MethodGet, Path: "/notifications/list", Handler: h.Notifications, Protected: true},
		{Method: http.MethodPost, Path: "/notifications/{id}/mark-read", Handler: h.MarkNotificationRead, Protected: true},
		{Method: http.MethodPost, Path: "/notifications/mark-all-read", Handler: h.MarkAllNotificationsRead, Protected: true},
	}
}

// Limiters bundles the per-class rate limiters. Nil limiters disable
// rate limiting for their class.
type Limiters struct {
	Auth    *middleware.RateLimiter
	Refresh *middleware.RateLimiter
}

// BuildMux assembles the full server mux: every route wrapped in the
// middleware chain, plus a JSON 404 fallback.
func BuildMux(h *Handler, codec *token.Codec, allowedOrigins []string, limiters Limiters) *http.ServeMux {
	mux := http.NewServeMux()

	for _, route := range h.Routes() {
		chain := []func(http.HandlerFunc) http.HandlerFunc{
			middleware.LogRequest,
			middleware.CORS(allowedOrigins),
		}
		switch route.Limit {
		case LimitAuth:
			if limiters.Auth != nil {
				chain = append(chain, middleware.RateLimit(limiters.Auth, middleware.ClientIP))
			}
		case LimitRefresh:
			if limiters.Refresh != nil {
				chain = append(chain, middleware.RateLimit(limiters.Refresh, middleware.ClientIP))
			}
		}
		if route.Protected {
			chain = append(chain, middleware.Auth(codec))
		}

		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
	}

	// Preflight and unknown paths share the fallback; CORS still applies.
	mux.HandleFunc("/", middleware.Chain(notFound, middleware.LogRequest, middleware.CORS(allowedOrigins)))

	return mux
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, "not_found", "Ressource inconnue.", http.StatusNotFound)
}
