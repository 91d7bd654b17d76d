package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type CreateOfferInput struct {
	CampaignID  string
	AthleteID   string
	MatchID     string
	AmountCents int64
	Terms       string
}

type RespondOfferInput struct {
	Action       string
	CounterCents int64
}

// OfferEvent describes a completed offer lifecycle change for outbound
// notification. Publishing is best-effort and never fails the request.
type OfferEvent struct {
	OfferID    string
	CampaignID string
	BusinessID string
	AthleteID  string
	From       offer.Status
	To         offer.Status
	OccurredAt time.Time
}

type OfferEventPublisher interface {
	PublishOfferEvent(ctx context.Context, event OfferEvent)
}

type noopOfferEventPublisher struct{}

func (noopOfferEventPublisher) PublishOfferEvent(_ context.Context, _ OfferEvent) {}

type OfferService struct {
	offerRepo    offer.Repository
	campaignRepo campaign.Repository
	userRepo     user.Repository
	publisher    OfferEventPublisher
	idGen        id.Generator
	now          func() time.Time
}

func NewOfferService(
	offerRepo offer.Repository,
	campaignRepo campaign.Repository,
	userRepo user.Repository,
	publisher OfferEventPublisher,
	idGen id.Generator,
) *OfferService {
	if publisher == nil {
		publisher = noopOfferEventPublisher{}
	}

	return &OfferService{
		offerRepo:    offerRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *OfferService) Create(ctx context.Context, principal user.Principal, input CreateOfferInput) (offer.Offer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.Create")
	defer span.End()

	if principal.Role != user.RoleBusiness {
		return offer.Offer{}, fmt.Errorf("%w: only businesses can send offers", ErrForbidden)
	}

	input.CampaignID = strings.TrimSpace(input.CampaignID)
	input.AthleteID = strings.TrimSpace(input.AthleteID)
	input.MatchID = strings.TrimSpace(input.MatchID)

	camp, exists, err := s.campaignRepo.GetByID(ctx, input.CampaignID)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("get campaign: %w", err)
	}
	if !exists {
		return offer.Offer{}, fmt.Errorf("%w: campaign not found", ErrNotFound)
	}
	if camp.BusinessID != principal.UserID {
		return offer.Offer{}, fmt.Errorf("%w: campaign belongs to another business", ErrForbidden)
	}

	athlete, exists, err := s.userRepo.GetByID(ctx, input.AthleteID)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("get athlete: %w", err)
	}
	if !exists || athlete.Role != user.RoleAthlete {
		return offer.Offer{}, fmt.Errorf("%w: athlete not found", ErrNotFound)
	}

	offerID, err := s.idGen.NewID()
	if err != nil {
		return offer.Offer{}, fmt.Errorf("generate offer id: %w", err)
	}

	now := s.now().UTC()
	created := offer.Offer{
		ID:          offerID,
		CampaignID:  input.CampaignID,
		BusinessID:  principal.UserID,
		AthleteID:   input.AthleteID,
		MatchID:     input.MatchID,
		AmountCents: input.AmountCents,
		Terms:       strings.TrimSpace(input.Terms),
		Status:      offer.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := created.Validate(); err != nil {
		return offer.Offer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.offerRepo.Create(ctx, created); err != nil {
		return offer.Offer{}, fmt.Errorf("create offer: %w", err)
	}

	return created, nil
}

// Respond applies the recipient athlete's decision. The transition is a single
// conditional write so two concurrent responses produce exactly one winner;
// the loser sees a conflict naming the status that won.
func (s *OfferService) Respond(ctx context.Context, principal user.Principal, offerID string, input RespondOfferInput) (offer.Offer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.Respond")
	defer span.End()

	target, counter, err := respondTarget(input)
	if err != nil {
		return offer.Offer{}, err
	}

	existing, err := s.getOwned(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}
	if existing.AthleteID != principal.UserID {
		return offer.Offer{}, fmt.Errorf("%w: offer is addressed to another athlete", ErrForbidden)
	}

	return s.transition(ctx, existing, target, counter)
}

// Cancel withdraws a pending offer. Only the owning business may cancel.
func (s *OfferService) Cancel(ctx context.Context, principal user.Principal, offerID string) (offer.Offer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.Cancel")
	defer span.End()

	existing, err := s.getOwned(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}
	if existing.BusinessID != principal.UserID {
		return offer.Offer{}, fmt.Errorf("%w: offer belongs to another business", ErrForbidden)
	}

	return s.transition(ctx, existing, offer.StatusCanceled, nil)
}

func (s *OfferService) Get(ctx context.Context, principal user.Principal, offerID string) (offer.Offer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.Get")
	defer span.End()

	existing, err := s.getOwned(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}
	if existing.AthleteID != principal.UserID && existing.BusinessID != principal.UserID && principal.Role != user.RoleAdmin {
		return offer.Offer{}, fmt.Errorf("%w: offer involves another user", ErrForbidden)
	}

	return existing, nil
}

func (s *OfferService) ListForPrincipal(ctx context.Context, principal user.Principal) ([]offer.Offer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.ListForPrincipal")
	defer span.End()

	switch principal.Role {
	case user.RoleAthlete:
		items, err := s.offerRepo.ListByAthlete(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list offers by athlete: %w", err)
		}
		return items, nil
	case user.RoleBusiness:
		items, err := s.offerRepo.ListByBusiness(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list offers by business: %w", err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: offers are scoped to athletes and businesses", ErrForbidden)
	}
}

func (s *OfferService) getOwned(ctx context.Context, offerID string) (offer.Offer, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return offer.Offer{}, fmt.Errorf("%w: offer_id is required", ErrInvalidInput)
	}

	existing, exists, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("get offer: %w", err)
	}
	if !exists {
		return offer.Offer{}, fmt.Errorf("%w: offer not found", ErrNotFound)
	}

	return existing, nil
}

func (s *OfferService) transition(ctx context.Context, existing offer.Offer, target offer.Status, counter *int64) (offer.Offer, error) {
	if !existing.Status.CanTransition(target) {
		return offer.Offer{}, fmt.Errorf("%w: offer is already %s", ErrConflict, existing.Status)
	}

	now := s.now().UTC()
	applied, err := s.offerRepo.ApplyTransition(ctx, offer.Transition{
		OfferID:      existing.ID,
		To:           target,
		CounterCents: counter,
		RespondedAt:  now,
	})
	if err != nil {
		return offer.Offer{}, fmt.Errorf("apply offer transition: %w", err)
	}
	if !applied {
		// Lost the race: re-read so the conflict names the winning status.
		latest, exists, err := s.offerRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return offer.Offer{}, fmt.Errorf("re-fetch offer: %w", err)
		}
		if !exists {
			return offer.Offer{}, fmt.Errorf("%w: offer not found", ErrNotFound)
		}
		return offer.Offer{}, fmt.Errorf("%w: offer is already %s", ErrConflict, latest.Status)
	}

	out := existing
	out.Status = target
	out.CounterCents = counter
	out.RespondedAt = &now
	out.UpdatedAt = now

	s.publisher.PublishOfferEvent(ctx, OfferEvent{
		OfferID:    out.ID,
		CampaignID: out.CampaignID,
		BusinessID: out.BusinessID,
		AthleteID:  out.AthleteID,
		From:       offer.StatusPending,
		To:         target,
		OccurredAt: now,
	})

	return out, nil
}

func respondTarget(input RespondOfferInput) (offer.Status, *int64, error) {
	switch strings.ToLower(strings.TrimSpace(input.Action)) {
	case "accept":
		return offer.StatusAccepted, nil, nil
	case "decline":
		return offer.StatusDeclined, nil, nil
	case "counter":
		if input.CounterCents <= 0 {
			return "", nil, fmt.Errorf("%w: counter amount must be positive", ErrInvalidInput)
		}
		counter := input.CounterCents
		return offer.StatusCountered, &counter, nil
	default:
		return "", nil, fmt.Errorf("%w: action must be accept, decline or counter", ErrInvalidInput)
	}
}
