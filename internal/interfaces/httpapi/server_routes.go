package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /api/auth/register", handler.Register)
	mux.HandleFunc("POST /api/auth/login", handler.Login)
	mux.HandleFunc("POST /api/auth/logout", handler.Logout)
	mux.Handle("GET /api/auth/user", RequireAuth(verifier, http.HandlerFunc(handler.CurrentUser)))
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/profiles/athlete/{userID}", handler.GetAthleteProfile)
	mux.HandleFunc("GET /api/profiles/business/{userID}", handler.GetBusinessProfile)
	mux.HandleFunc("GET /api/campaigns", handler.ListOpenCampaigns)
	mux.HandleFunc("GET /api/campaigns/{campaignID}", handler.GetCampaign)
	mux.HandleFunc("GET /api/feedback", handler.ListFeedback)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	authed := func(next http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, next)
	}
	roleGated := func(next http.HandlerFunc, roles ...user.Role) http.Handler {
		return RequireAuth(verifier, RequireRole(next, roles...))
	}

	mux.Handle("PUT /api/profiles/athlete", roleGated(handler.SaveAthleteProfile, user.RoleAthlete))
	mux.Handle("PUT /api/profiles/business", roleGated(handler.SaveBusinessProfile, user.RoleBusiness))

	mux.Handle("POST /api/campaigns", roleGated(handler.CreateCampaign, user.RoleBusiness))
	mux.Handle("PATCH /api/campaigns/{campaignID}", roleGated(handler.UpdateCampaign, user.RoleBusiness))
	mux.Handle("GET /api/campaigns/mine", authed(handler.ListMyCampaigns))

	mux.Handle("GET /api/matches", authed(handler.ListMatches))
	mux.Handle("GET /api/matches/{matchID}", authed(handler.GetMatch))

	mux.Handle("POST /api/offers", roleGated(handler.CreateOffer, user.RoleBusiness))
	mux.Handle("GET /api/offers", authed(handler.ListOffers))
	mux.Handle("GET /api/offers/{offerID}", authed(handler.GetOffer))
	mux.Handle("POST /api/offers/{offerID}/respond", roleGated(handler.RespondOffer, user.RoleAthlete))
	mux.Handle("POST /api/offers/{offerID}/cancel", roleGated(handler.CancelOffer, user.RoleBusiness))

	mux.Handle("POST /api/messages", authed(handler.SendMessage))
	mux.Handle("GET /api/messages", authed(handler.ListMessages))
	mux.Handle("GET /api/messages/sessions", authed(handler.ListMessageSessions))

	mux.Handle("POST /api/feedback", authed(handler.CreateFeedback))
	mux.Handle("POST /api/feedback/{feedbackID}/moderate", roleGated(handler.ModerateFeedback, user.RoleCompliance))

	mux.Handle("GET /api/dashboard/config", authed(handler.GetDashboardConfig))
	mux.Handle("PUT /api/dashboard/config", authed(handler.SaveDashboardConfig))
	mux.Handle("GET /api/dashboard/summary", authed(handler.GetDashboardSummary))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /api/internal/match-scores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestMatchScores)))
}
