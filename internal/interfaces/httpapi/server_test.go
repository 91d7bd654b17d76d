package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

const testInternalToken = "internal-test-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	stores := memory.NewStores()
	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	authService := usecase.NewAuthService(stores.Users, stores.Sessions, idGen, []byte("test-session-secret"), time.Hour)
	profileService := usecase.NewProfileService(stores.Profiles)
	campaignService := usecase.NewCampaignService(stores.Campaigns, idGen)
	matchService := usecase.NewMatchService(stores.Matches, idGen)
	offerService := usecase.NewOfferService(stores.Offers, stores.Campaigns, stores.Users, nil, idGen)
	messageService := usecase.NewMessageService(stores.Messages, idGen)
	feedbackService := usecase.NewFeedbackService(stores.Feedbacks, stores.Users, idGen)
	dashboardService := usecase.NewDashboardService(stores.Dashboards, stores.Campaigns, stores.Matches, stores.Offers, stores.Messages)

	handler := NewHandler(
		authService,
		profileService,
		campaignService,
		matchService,
		offerService,
		messageService,
		feedbackService,
		dashboardService,
		logger,
	)

	return NewRouter(handler, authService, logger, []string{"*"}, testInternalToken)
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data any `json:"data"`
	}
	envelope.Data = out
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, rec.Body.String())
	}
}

func TestRouterRegisterLoginCurrentUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		`{"email":"jordan@example.com","password":"long-enough-pw","username":"jordan","full_name":"Jordan Reyes","role":"athlete"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"jordan@example.com","password":"long-enough-pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", rec.Code, rec.Body.String())
	}

	var login struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeData(t, rec, &login)
	if login.Token == "" {
		t.Fatal("login returned empty token")
	}
	if login.User.Role != "athlete" {
		t.Fatalf("login role=%q", login.User.Role)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/user", login.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("current user status=%d body=%s", rec.Code, rec.Body.String())
	}
	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, rec, &me)
	if me.Email != "jordan@example.com" {
		t.Fatalf("current user email=%q", me.Email)
	}
}

func TestRouterRejectsMissingCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/user", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/dashboard/summary", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for dashboard, got %d", rec.Code)
	}
}

func TestRouterDuplicateEmailConflicts(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"email":"dup@example.com","password":"long-enough-pw","username":"first","role":"business"}`
	if rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", payload); rec.Code != http.StatusCreated {
		t.Fatalf("first register status=%d", rec.Code)
	}

	payload = `{"email":"dup@example.com","password":"long-enough-pw","username":"second","role":"business"}`
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterInternalIngestionTokenGate(t *testing.T) {
	router := newTestRouter(t)

	body := `{"scores":[{"athlete_id":"a1","business_id":"b1","campaign_id":"c1","score":70.5}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/internal/match-scores", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/internal/match-scores", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Job-Token", testInternalToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d body=%s", rec.Code, rec.Body.String())
	}

	var out struct {
		Ingested int `json:"ingested"`
	}
	decodeData(t, rec, &out)
	if out.Ingested != 1 {
		t.Fatalf("ingested=%d want 1", out.Ingested)
	}
}

func TestRouterOfferLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	register := func(email, username, role string) string {
		payload := `{"email":"` + email + `","password":"long-enough-pw","username":"` + username + `","role":"` + role + `"}`
		if rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", payload); rec.Code != http.StatusCreated {
			t.Fatalf("register %s status=%d body=%s", email, rec.Code, rec.Body.String())
		}
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"long-enough-pw"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("login %s status=%d", email, rec.Code)
		}
		var login struct {
			Token string `json:"token"`
		}
		decodeData(t, rec, &login)
		return login.Token
	}

	businessToken := register("brand@example.com", "brand", "business")
	athleteToken := register("athlete@example.com", "athlete", "athlete")

	rec := doJSON(t, router, http.MethodPost, "/api/campaigns", businessToken,
		`{"title":"Spring launch","budget_cents":250000,"status":"open"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create campaign status=%d body=%s", rec.Code, rec.Body.String())
	}
	var createdCampaign struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &createdCampaign)

	var athleteID string
	{
		rec := doJSON(t, router, http.MethodGet, "/api/auth/user", athleteToken, "")
		var me struct {
			ID string `json:"id"`
		}
		decodeData(t, rec, &me)
		athleteID = me.ID
	}

	rec = doJSON(t, router, http.MethodPost, "/api/offers", businessToken,
		`{"campaign_id":"`+createdCampaign.ID+`","athlete_id":"`+athleteID+`","amount_cents":50000,"terms":"two posts"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create offer status=%d body=%s", rec.Code, rec.Body.String())
	}
	var createdOffer struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rec, &createdOffer)
	if createdOffer.Status != "pending" {
		t.Fatalf("new offer status=%q", createdOffer.Status)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/offers/"+createdOffer.ID+"/respond", athleteToken,
		`{"action":"accept"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("respond status=%d body=%s", rec.Code, rec.Body.String())
	}
	var responded struct {
		Status string `json:"status"`
	}
	decodeData(t, rec, &responded)
	if responded.Status != "accepted" {
		t.Fatalf("responded status=%q", responded.Status)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/offers/"+createdOffer.ID+"/respond", athleteToken,
		`{"action":"decline"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second respond status=%d body=%s", rec.Code, rec.Body.String())
	}
}
