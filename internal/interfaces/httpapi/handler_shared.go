package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,max=60"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
	Role     string `json:"role" validate:"required,oneof=athlete business compliance admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type saveAthleteProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=120"`
	Sport       string `json:"sport" validate:"omitempty,max=80"`
	League      string `json:"league" validate:"omitempty,max=80"`
	Bio         string `json:"bio" validate:"omitempty,max=4000"`
	SocialReach int64  `json:"social_reach" validate:"omitempty,gte=0"`
}

type saveBusinessProfileRequest struct {
	CompanyName string `json:"company_name" validate:"omitempty,max=160"`
	Industry    string `json:"industry" validate:"omitempty,max=80"`
	Website     string `json:"website" validate:"omitempty,max=200"`
	Bio         string `json:"bio" validate:"omitempty,max=4000"`
}

type createCampaignRequest struct {
	Title       string `json:"title" validate:"required,max=160"`
	Brief       string `json:"brief" validate:"omitempty,max=4000"`
	BudgetCents int64  `json:"budget_cents" validate:"omitempty,gte=0"`
	Status      string `json:"status" validate:"omitempty,max=40"`
}

type updateCampaignRequest struct {
	Title       string `json:"title" validate:"omitempty,max=160"`
	Brief       string `json:"brief" validate:"omitempty,max=4000"`
	BudgetCents int64  `json:"budget_cents" validate:"omitempty,gte=0"`
	Status      string `json:"status" validate:"omitempty,max=40"`
}

type ingestMatchScoreItem struct {
	AthleteID  string  `json:"athlete_id" validate:"required"`
	BusinessID string  `json:"business_id" validate:"required"`
	CampaignID string  `json:"campaign_id" validate:"required"`
	Score      float64 `json:"score" validate:"gte=0,lte=100"`
}

type ingestMatchScoresRequest struct {
	Scores []ingestMatchScoreItem `json:"scores" validate:"required,min=1,dive"`
}

type createOfferRequest struct {
	CampaignID  string `json:"campaign_id" validate:"required"`
	AthleteID   string `json:"athlete_id" validate:"required"`
	MatchID     string `json:"match_id" validate:"omitempty"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Terms       string `json:"terms" validate:"omitempty,max=4000"`
}

type respondOfferRequest struct {
	Action       string `json:"action" validate:"required,oneof=accept decline counter"`
	CounterCents int64  `json:"counter_cents" validate:"omitempty,gt=0"`
}

type sendMessageRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Body      string `json:"body" validate:"required,max=4000"`
}

type createFeedbackRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=4000"`
}

type moderateFeedbackRequest struct {
	Status string `json:"status" validate:"required,oneof=published flagged removed"`
}

type saveDashboardConfigRequest struct {
	Layout json.RawMessage `json:"layout" validate:"required"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type loginResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type athleteProfileDTO struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Sport       string    `json:"sport"`
	League      string    `json:"league,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	SocialReach int64     `json:"social_reach"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func athleteProfileToDTO(p profile.Athlete) athleteProfileDTO {
	return athleteProfileDTO{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Sport:       p.Sport,
		League:      p.League,
		Bio:         p.Bio,
		SocialReach: p.SocialReach,
		UpdatedAt:   p.UpdatedAt,
	}
}

type businessProfileDTO struct {
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry,omitempty"`
	Website     string    `json:"website,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func businessProfileToDTO(p profile.Business) businessProfileDTO {
	return businessProfileDTO{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Industry:    p.Industry,
		Website:     p.Website,
		Bio:         p.Bio,
		UpdatedAt:   p.UpdatedAt,
	}
}

type campaignDTO struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Title       string    `json:"title"`
	Brief       string    `json:"brief,omitempty"`
	BudgetCents int64     `json:"budget_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func campaignToDTO(c campaign.Campaign) campaignDTO {
	return campaignDTO{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		Title:       c.Title,
		Brief:       c.Brief,
		BudgetCents: c.BudgetCents,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type matchDTO struct {
	ID         string    `json:"id"`
	AthleteID  string    `json:"athlete_id"`
	BusinessID string    `json:"business_id"`
	CampaignID string    `json:"campaign_id"`
	Score      float64   `json:"score"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		AthleteID:  m.AthleteID,
		BusinessID: m.BusinessID,
		CampaignID: m.CampaignID,
		Score:      m.Score,
		UpdatedAt:  m.UpdatedAt,
	}
}

type offerDTO struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaign_id"`
	BusinessID   string     `json:"business_id"`
	AthleteID    string     `json:"athlete_id"`
	MatchID      string     `json:"match_id,omitempty"`
	AmountCents  int64      `json:"amount_cents"`
	Terms        string     `json:"terms,omitempty"`
	Status       string     `json:"status"`
	CounterCents *int64     `json:"counter_cents,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func offerToDTO(o offer.Offer) offerDTO {
	return offerDTO{
		ID:           o.ID,
		CampaignID:   o.CampaignID,
		BusinessID:   o.BusinessID,
		AthleteID:    o.AthleteID,
		MatchID:      o.MatchID,
		AmountCents:  o.AmountCents,
		Terms:        o.Terms,
		Status:       string(o.Status),
		CounterCents: o.CounterCents,
		RespondedAt:  o.RespondedAt,
		CreatedAt:    o.CreatedAt,
	}
}

type messageDTO struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func messageToDTO(m message.Message) messageDTO {
	return messageDTO{
		ID:        m.ID,
		SessionID: m.SessionID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type feedbackDTO struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	SubjectID string    `json:"subject_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func feedbackToDTO(f feedback.Feedback) feedbackDTO {
	return feedbackDTO{
		ID:        f.ID,
		AuthorID:  f.AuthorID,
		SubjectID: f.SubjectID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}

type dashboardConfigDTO struct {
	UserID    string          `json:"user_id"`
	Layout    json.RawMessage `json:"layout"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func dashboardConfigToDTO(c dashboard.Config) dashboardConfigDTO {
	return dashboardConfigDTO{
		UserID:    c.UserID,
		Layout:    json.RawMessage(c.Layout),
		UpdatedAt: c.UpdatedAt,
	}
}

type dashboardSummaryDTO struct {
	Campaigns       int `json:"campaigns"`
	Matches         int `json:"matches"`
	PendingOffers   int `json:"pending_offers"`
	ResolvedOffers  int `json:"resolved_offers"`
	MessageSessions int `json:"message_sessions"`
}

func dashboardSummaryToDTO(s dashboard.Summary) dashboardSummaryDTO {
	return dashboardSummaryDTO{
		Campaigns:       s.Campaigns,
		Matches:         s.Matches,
		PendingOffers:   s.PendingOffers,
		ResolvedOffers:  s.ResolvedOffers,
		MessageSessions: s.MessageSessions,
	}
}
