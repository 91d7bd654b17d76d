package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	campaignmock "github.com/ekalbevoldog/contested/internal/mocks/domain/campaign"
	offermock "github.com/ekalbevoldog/contested/internal/mocks/domain/offer"
	usermock "github.com/ekalbevoldog/contested/internal/mocks/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func TestOfferService_Create_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	offerRepo := offermock.NewRepository(t)
	campaignRepo := campaignmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)

	service := NewOfferService(offerRepo, campaignRepo, userRepo, nil, id.NewRandomGenerator())
	principal := user.Principal{UserID: "biz-1", Email: "brand@example.com", Role: user.RoleBusiness}

	campaignRepo.
		On("GetByID", mock.Anything, "camp-1").
		Return(campaign.Campaign{ID: "camp-1", BusinessID: "biz-1", Status: campaign.StatusOpen}, true, nil).
		Once()
	userRepo.
		On("GetByID", mock.Anything, "ath-1").
		Return(user.User{ID: "ath-1", Role: user.RoleAthlete}, true, nil).
		Once()
	offerRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(o offer.Offer) bool {
			return o.CampaignID == "camp-1" && o.AthleteID == "ath-1" && o.Status == offer.StatusPending
		})).
		Return(nil).
		Once()

	created, err := service.Create(ctx, principal, CreateOfferInput{
		CampaignID:  "camp-1",
		AthleteID:   "ath-1",
		AmountCents: 50000,
		Terms:       "two posts",
	})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}
	if created.Status != offer.StatusPending {
		t.Fatalf("unexpected status: got=%s want=%s", created.Status, offer.StatusPending)
	}
	if created.BusinessID != "biz-1" {
		t.Fatalf("unexpected business id: %s", created.BusinessID)
	}
}

func TestOfferService_Respond_LostRaceNamesWinnerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	offerRepo := offermock.NewRepository(t)
	campaignRepo := campaignmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)

	service := NewOfferService(offerRepo, campaignRepo, userRepo, nil, id.NewRandomGenerator())
	principal := user.Principal{UserID: "ath-1", Role: user.RoleAthlete}

	pending := offer.Offer{ID: "offer-1", CampaignID: "camp-1", BusinessID: "biz-1", AthleteID: "ath-1", AmountCents: 50000, Status: offer.StatusPending}
	accepted := pending
	accepted.Status = offer.StatusAccepted

	offerRepo.
		On("GetByID", mock.Anything, "offer-1").
		Return(pending, true, nil).
		Once()
	offerRepo.
		On("ApplyTransition", mock.Anything, mock.MatchedBy(func(tr offer.Transition) bool {
			return tr.OfferID == "offer-1" && tr.To == offer.StatusDeclined
		})).
		Return(false, nil).
		Once()
	offerRepo.
		On("GetByID", mock.Anything, "offer-1").
		Return(accepted, true, nil).
		Once()

	_, err := service.Respond(ctx, principal, "offer-1", RespondOfferInput{Action: "decline"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
