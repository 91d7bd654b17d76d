package restapi

import (
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/session"
	"github.com/ekalbevoldog/contested/internal/domain/user"
)

// Byte-slice columns (credential material, session payloads, dashboard
// layouts) travel as base64 text; the hosted schema stores them as text and
// only this client reads them back.
type userRow struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash []byte    `json:"password_hash"`
	PasswordSalt []byte    `json:"password_salt"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r userRow) toDomain() user.User {
	return user.User{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		FullName:     r.FullName,
		Role:         user.Role(r.Role),
		PasswordHash: r.PasswordHash,
		PasswordSalt: r.PasswordSalt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func userToRow(u user.User) userRow {
	return userRow{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		PasswordSalt: u.PasswordSalt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type sessionRow struct {
	TokenHash string    `json:"token_hash"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Payload   []byte    `json:"payload"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r sessionRow) toDomain() session.Session {
	return session.Session{
		TokenHash: r.TokenHash,
		UserID:    r.UserID,
		Role:      r.Role,
		Payload:   r.Payload,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}

type athleteProfileRow struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Sport       string    `json:"sport"`
	League      string    `json:"league,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	SocialReach int64     `json:"social_reach"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r athleteProfileRow) toDomain() profile.Athlete {
	return profile.Athlete{
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Sport:       r.Sport,
		League:      r.League,
		Bio:         r.Bio,
		SocialReach: r.SocialReach,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type businessProfileRow struct {
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry,omitempty"`
	Website     string    `json:"website,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r businessProfileRow) toDomain() profile.Business {
	return profile.Business{
		UserID:      r.UserID,
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		Website:     r.Website,
		Bio:         r.Bio,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type campaignRow struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Title       string    `json:"title"`
	Brief       string    `json:"brief,omitempty"`
	BudgetCents int64     `json:"budget_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r campaignRow) toDomain() campaign.Campaign {
	return campaign.Campaign{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Title:       r.Title,
		Brief:       r.Brief,
		BudgetCents: r.BudgetCents,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type matchRow struct {
	ID         string    `json:"id"`
	AthleteID  string    `json:"athlete_id"`
	BusinessID string    `json:"business_id"`
	CampaignID string    `json:"campaign_id"`
	Score      float64   `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r matchRow) toDomain() match.Match {
	return match.Match{
		ID:         r.ID,
		AthleteID:  r.AthleteID,
		BusinessID: r.BusinessID,
		CampaignID: r.CampaignID,
		Score:      r.Score,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type offerRow struct {
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
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (r offerRow) toDomain() offer.Offer {
	return offer.Offer{
		ID:           r.ID,
		CampaignID:   r.CampaignID,
		BusinessID:   r.BusinessID,
		AthleteID:    r.AthleteID,
		MatchID:      r.MatchID,
		AmountCents:  r.AmountCents,
		Terms:        r.Terms,
		Status:       offer.Status(r.Status),
		CounterCents: r.CounterCents,
		RespondedAt:  r.RespondedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type messageRow struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (r messageRow) toDomain() message.Message {
	return message.Message{
		ID:        r.ID,
		SessionID: r.SessionID,
		SenderID:  r.SenderID,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}

type feedbackRow struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	SubjectID string    `json:"subject_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r feedbackRow) toDomain() feedback.Feedback {
	return feedback.Feedback{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		SubjectID: r.SubjectID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type dashboardConfigRow struct {
	UserID    string    `json:"user_id"`
	Layout    []byte    `json:"layout"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r dashboardConfigRow) toDomain() dashboard.Config {
	return dashboard.Config{
		UserID:    r.UserID,
		Layout:    r.Layout,
		UpdatedAt: r.UpdatedAt,
	}
}
