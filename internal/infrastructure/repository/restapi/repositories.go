package restapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/session"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
	"github.com/ekalbevoldog/contested/internal/domain/user"
)

type UserRepository struct {
	c *Client
}

func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{c: c}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	if err := r.c.insert(ctx, "users", userToRow(u)); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getBy(ctx, "id", userID)
}

// Email and username columns are citext on the hosted schema, so an eq filter
// already matches case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	var rows []userRow
	query := url.Values{
		"role":  {eq(string(role))},
		"order": {"created_at.asc"},
	}
	if err := r.c.get(ctx, "users", query, &rows); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (user.User, bool, error) {
	var rows []userRow
	query := url.Values{
		column:  {eq(value)},
		"limit": {"1"},
	}
	if err := r.c.get(ctx, "users", query, &rows); err != nil {
		return user.User{}, false, fmt.Errorf("get user by %s: %w", column, err)
	}
	if len(rows) == 0 {
		return user.User{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

type SessionRepository struct {
	c *Client
}

func NewSessionRepository(c *Client) *SessionRepository {
	return &SessionRepository{c: c}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	row := sessionRow{
		TokenHash: s.TokenHash,
		UserID:    s.UserID,
		Role:      s.Role,
		Payload:   s.Payload,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
	if err := r.c.insert(ctx, "sessions", row); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (session.Session, bool, error) {
	var rows []sessionRow
	query := url.Values{
		"token_hash": {eq(tokenHash)},
		"limit":      {"1"},
	}
	if err := r.c.get(ctx, "sessions", query, &rows); err != nil {
		return session.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	if len(rows) == 0 {
		return session.Session{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	query := url.Values{"token_hash": {eq(tokenHash)}}
	if err := r.c.delete(ctx, "sessions", query); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := url.Values{"user_id": {eq(userID)}}
	if err := r.c.delete(ctx, "sessions", query); err != nil {
		return fmt.Errorf("delete sessions for user: %w", err)
	}
	return nil
}

type ProfileRepository struct {
	c *Client
}

func NewProfileRepository(c *Client) *ProfileRepository {
	return &ProfileRepository{c: c}
}

func (r *ProfileRepository) UpsertAthlete(ctx context.Context, p profile.Athlete) error {
	row := athleteProfileRow{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Sport:       p.Sport,
		League:      p.League,
		Bio:         p.Bio,
		SocialReach: p.SocialReach,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if err := r.c.upsert(ctx, "athlete_profiles", "user_id", row); err != nil {
		return fmt.Errorf("upsert athlete profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetAthleteByUserID(ctx context.Context, userID string) (profile.Athlete, bool, error) {
	var rows []athleteProfileRow
	query := url.Values{
		"user_id": {eq(userID)},
		"limit":   {"1"},
	}
	if err := r.c.get(ctx, "athlete_profiles", query, &rows); err != nil {
		return profile.Athlete{}, false, fmt.Errorf("get athlete profile: %w", err)
	}
	if len(rows) == 0 {
		return profile.Athlete{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *ProfileRepository) UpsertBusiness(ctx context.Context, p profile.Business) error {
	row := businessProfileRow{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Industry:    p.Industry,
		Website:     p.Website,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if err := r.c.upsert(ctx, "business_profiles", "user_id", row); err != nil {
		return fmt.Errorf("upsert business profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetBusinessByUserID(ctx context.Context, userID string) (profile.Business, bool, error) {
	var rows []businessProfileRow
	query := url.Values{
		"user_id": {eq(userID)},
		"limit":   {"1"},
	}
	if err := r.c.get(ctx, "business_profiles", query, &rows); err != nil {
		return profile.Business{}, false, fmt.Errorf("get business profile: %w", err)
	}
	if len(rows) == 0 {
		return profile.Business{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

type CampaignRepository struct {
	c *Client
}

func NewCampaignRepository(c *Client) *CampaignRepository {
	return &CampaignRepository{c: c}
}

func (r *CampaignRepository) Create(ctx context.Context, cp campaign.Campaign) error {
	if err := r.c.insert(ctx, "campaigns", campaignToRow(cp)); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, cp campaign.Campaign) error {
	query := url.Values{"id": {eq(cp.ID)}}
	var rows []campaignRow
	if err := r.c.patch(ctx, "campaigns", query, campaignToRow(cp), &rows); err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("update campaign: %w", storage.ErrNotFound)
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, campaignID string) (campaign.Campaign, bool, error) {
	var rows []campaignRow
	query := url.Values{
		"id":    {eq(campaignID)},
		"limit": {"1"},
	}
	if err := r.c.get(ctx, "campaigns", query, &rows); err != nil {
		return campaign.Campaign{}, false, fmt.Errorf("get campaign: %w", err)
	}
	if len(rows) == 0 {
		return campaign.Campaign{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *CampaignRepository) ListByBusiness(ctx context.Context, businessID string) ([]campaign.Campaign, error) {
	return r.list(ctx, "business_id", businessID)
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status string) ([]campaign.Campaign, error) {
	return r.list(ctx, "status", status)
}

func (r *CampaignRepository) list(ctx context.Context, column, value string) ([]campaign.Campaign, error) {
	var rows []campaignRow
	query := url.Values{
		column:  {eq(value)},
		"order": {"created_at.asc"},
	}
	if err := r.c.get(ctx, "campaigns", query, &rows); err != nil {
		return nil, fmt.Errorf("list campaigns by %s: %w", column, err)
	}

	out := make([]campaign.Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type MatchRepository struct {
	c *Client
}

func NewMatchRepository(c *Client) *MatchRepository {
	return &MatchRepository{c: c}
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	row := matchRow{
		ID:         m.ID,
		AthleteID:  m.AthleteID,
		BusinessID: m.BusinessID,
		CampaignID: m.CampaignID,
		Score:      m.Score,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if err := r.c.upsert(ctx, "match_scores", "athlete_id,campaign_id", row); err != nil {
		return fmt.Errorf("upsert match score: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	var rows []matchRow
	query := url.Values{
		"id":    {eq(matchID)},
		"limit": {"1"},
	}
	if err := r.c.get(ctx, "match_scores", query, &rows); err != nil {
		return match.Match{}, false, fmt.Errorf("get match score: %w", err)
	}
	if len(rows) == 0 {
		return match.Match{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *MatchRepository) ListByAthlete(ctx context.Context, athleteID string) ([]match.Match, error) {
	return r.list(ctx, "athlete_id", athleteID)
}

func (r *MatchRepository) ListByBusiness(ctx context.Context, businessID string) ([]match.Match, error) {
	return r.list(ctx, "business_id", businessID)
}

func (r *MatchRepository) list(ctx context.Context, column, value string) ([]match.Match, error) {
	var rows []matchRow
	query := url.Values{
		column:  {eq(value)},
		"order": {"score.desc"},
	}
	if err := r.c.get(ctx, "match_scores", query, &rows); err != nil {
		return nil, fmt.Errorf("list match scores by %s: %w", column, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type OfferRepository struct {
	c *Client
}

func NewOfferRepository(c *Client) *OfferRepository {
	return &OfferRepository{c: c}
}

func (r *OfferRepository) Create(ctx context.Context, o offer.Offer) error {
	row := offerRow{
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
		UpdatedAt:    o.UpdatedAt,
	}
	if err := r.c.insert(ctx, "partnership_offers", row); err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, offerID string) (offer.Offer, bool, error) {
	var rows []offerRow
	query := url.Values{
		"id":    {eq(offerID)},
		"limit": {"1"},
	}
	if err := r.c.get(ctx, "partnership_offers", query, &rows); err != nil {
		return offer.Offer{}, false, fmt.Errorf("get offer: %w", err)
	}
	if len(rows) == 0 {
		return offer.Offer{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *OfferRepository) ListByAthlete(ctx context.Context, athleteID string) ([]offer.Offer, error) {
	return r.list(ctx, "athlete_id", athleteID)
}

func (r *OfferRepository) ListByBusiness(ctx context.Context, businessID string) ([]offer.Offer, error) {
	return r.list(ctx, "business_id", businessID)
}

// ApplyTransition patches only rows still in the pending status and asks for
// the updated representation back. The row count decides the race: an empty
// body means another responder already moved the offer out of pending.
func (r *OfferRepository) ApplyTransition(ctx context.Context, t offer.Transition) (bool, error) {
	query := url.Values{
		"id":     {eq(t.OfferID)},
		"status": {eq(string(offer.StatusPending))},
	}
	body := offerTransitionBody{
		Status:       string(t.To),
		CounterCents: t.CounterCents,
		RespondedAt:  t.RespondedAt,
		UpdatedAt:    t.RespondedAt,
	}

	var rows []offerRow
	if err := r.c.patch(ctx, "partnership_offers", query, body, &rows); err != nil {
		return false, fmt.Errorf("apply offer transition: %w", err)
	}

	return len(rows) == 1, nil
}

func (r *OfferRepository) list(ctx context.Context, column, value string) ([]offer.Offer, error) {
	var rows []offerRow
	query := url.Values{
		column:  {eq(value)},
		"order": {"created_at.asc"},
	}
	if err := r.c.get(ctx, "partnership_offers", query, &rows); err != nil {
		return nil, fmt.Errorf("list offers by %s: %w", column, err)
	}

	out := make([]offer.Offer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type offerTransitionBody struct {
	Status       string    `json:"status"`
	CounterCents *int64    `json:"counter_cents"`
	RespondedAt  time.Time `json:"responded_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MessageRepository struct {
	c *Client
}

func NewMessageRepository(c *Client) *MessageRepository {
	return &MessageRepository{c: c}
}

func (r *MessageRepository) Append(ctx context.Context, m message.Message) error {
	row := messageRow{
		ID:        m.ID,
		SessionID: m.SessionID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
	if err := r.c.insert(ctx, "messages", row); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string) ([]message.Message, error) {
	var rows []messageRow
	query := url.Values{
		"session_id": {eq(sessionID)},
		"order":      {"created_at.asc,id.asc"},
	}
	if err := r.c.get(ctx, "messages", query, &rows); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MessageRepository) ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var rows []struct {
		SessionID string `json:"session_id"`
	}
	query := url.Values{
		"select":    {"session_id"},
		"sender_id": {eq(userID)},
		"order":     {"session_id.asc"},
	}
	if err := r.c.get(ctx, "messages", query, &rows); err != nil {
		return nil, fmt.Errorf("list session ids: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(out) > 0 && out[len(out)-1] == row.SessionID {
			continue
		}
		out = append(out, row.SessionID)
	}

	return out, nil
}

type FeedbackRepository struct {
	c *Client
}

func NewFeedbackRepository(c *Client) *FeedbackRepository {
	return &FeedbackRepository{c: c}
}

func (r *FeedbackRepository) Create(ctx context.Context, f feedback.Feedback) error {
	row := feedbackRow{
		ID:        f.ID,
		AuthorID:  f.AuthorID,
		SubjectID: f.SubjectID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if err := r.c.insert(ctx, "feedbacks", row); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, feedbackID string) (feedback.Feedback, bool, error) {
	var rows []feedbackRow
	query := url.Values{
		"id":    {eq(feedbackID)},
		"limit": {"1"},
	}
	if err := r.c.get(ctx, "feedbacks", query, &rows); err != nil {
		return feedback.Feedback{}, false, fmt.Errorf("get feedback: %w", err)
	}
	if len(rows) == 0 {
		return feedback.Feedback{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func (r *FeedbackRepository) UpdateStatus(ctx context.Context, feedbackID, status string) error {
	query := url.Values{"id": {eq(feedbackID)}}
	body := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}

	var rows []feedbackRow
	if err := r.c.patch(ctx, "feedbacks", query, body, &rows); err != nil {
		return fmt.Errorf("update feedback status: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("update feedback status: %w", storage.ErrNotFound)
	}

	return nil
}

func (r *FeedbackRepository) ListBySubject(ctx context.Context, subjectID string) ([]feedback.Feedback, error) {
	var rows []feedbackRow
	query := url.Values{
		"subject_id": {eq(subjectID)},
		"order":      {"created_at.asc"},
	}
	if err := r.c.get(ctx, "feedbacks", query, &rows); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	out := make([]feedback.Feedback, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type DashboardRepository struct {
	c *Client
}

func NewDashboardRepository(c *Client) *DashboardRepository {
	return &DashboardRepository{c: c}
}

func (r *DashboardRepository) Upsert(ctx context.Context, cfg dashboard.Config) error {
	row := dashboardConfigRow{
		UserID:    cfg.UserID,
		Layout:    cfg.Layout,
		UpdatedAt: cfg.UpdatedAt,
	}
	if err := r.c.upsert(ctx, "user_dashboard_configs", "user_id", row); err != nil {
		return fmt.Errorf("upsert dashboard config: %w", err)
	}
	return nil
}

func (r *DashboardRepository) GetByUserID(ctx context.Context, userID string) (dashboard.Config, bool, error) {
	var rows []dashboardConfigRow
	query := url.Values{
		"user_id": {eq(userID)},
		"limit":   {"1"},
	}
	if err := r.c.get(ctx, "user_dashboard_configs", query, &rows); err != nil {
		return dashboard.Config{}, false, fmt.Errorf("get dashboard config: %w", err)
	}
	if len(rows) == 0 {
		return dashboard.Config{}, false, nil
	}

	return rows[0].toDomain(), true, nil
}

func campaignToRow(cp campaign.Campaign) campaignRow {
	return campaignRow{
		ID:          cp.ID,
		BusinessID:  cp.BusinessID,
		Title:       cp.Title,
		Brief:       cp.Brief,
		BudgetCents: cp.BudgetCents,
		Status:      cp.Status,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
	}
}
