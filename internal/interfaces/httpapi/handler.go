package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	profileService   *usecase.ProfileService
	campaignService  *usecase.CampaignService
	matchService     *usecase.MatchService
	offerService     *usecase.OfferService
	messageService   *usecase.MessageService
	feedbackService  *usecase.FeedbackService
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	profileService *usecase.ProfileService,
	campaignService *usecase.CampaignService,
	matchService *usecase.MatchService,
	offerService *usecase.OfferService,
	messageService *usecase.MessageService,
	feedbackService *usecase.FeedbackService,
	dashboardService *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		profileService:   profileService,
		campaignService:  campaignService,
		matchService:     matchService,
		offerService:     offerService,
		messageService:   messageService,
		feedbackService:  feedbackService,
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
