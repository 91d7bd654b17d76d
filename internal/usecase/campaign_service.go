package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type CreateCampaignInput struct {
	Title       string
	Brief       string
	BudgetCents int64
	Status      string
}

type UpdateCampaignInput struct {
	Title       string
	Brief       string
	BudgetCents int64
	Status      string
}

type CampaignService struct {
	campaignRepo campaign.Repository
	idGen        id.Generator
	now          func() time.Time
}

func NewCampaignService(campaignRepo campaign.Repository, idGen id.Generator) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *CampaignService) Create(ctx context.Context, principal user.Principal, input CreateCampaignInput) (campaign.Campaign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CampaignService.Create")
	defer span.End()

	if principal.Role != user.RoleBusiness && principal.Role != user.RoleAdmin {
		return campaign.Campaign{}, fmt.Errorf("%w: only businesses can create campaigns", ErrForbidden)
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = campaign.StatusDraft
	}

	campaignID, err := s.idGen.NewID()
	if err != nil {
		return campaign.Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}

	now := s.now().UTC()
	created := campaign.Campaign{
		ID:          campaignID,
		BusinessID:  principal.UserID,
		Title:       strings.TrimSpace(input.Title),
		Brief:       strings.TrimSpace(input.Brief),
		BudgetCents: input.BudgetCents,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := created.Validate(); err != nil {
		return campaign.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.campaignRepo.Create(ctx, created); err != nil {
		return campaign.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}

	return created, nil
}

// Update applies a partial merge: empty fields keep their stored value. Only
// the owning business or an admin may update.
func (s *CampaignService) Update(ctx context.Context, principal user.Principal, campaignID string, input UpdateCampaignInput) (campaign.Campaign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CampaignService.Update")
	defer span.End()

	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return campaign.Campaign{}, fmt.Errorf("%w: campaign_id is required", ErrInvalidInput)
	}

	existing, exists, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	if !exists {
		return campaign.Campaign{}, fmt.Errorf("%w: campaign not found", ErrNotFound)
	}
	if existing.BusinessID != principal.UserID && principal.Role != user.RoleAdmin {
		return campaign.Campaign{}, fmt.Errorf("%w: campaign belongs to another business", ErrForbidden)
	}

	out := existing
	if v := strings.TrimSpace(input.Title); v != "" {
		out.Title = v
	}
	if v := strings.TrimSpace(input.Brief); v != "" {
		out.Brief = v
	}
	if input.BudgetCents > 0 {
		out.BudgetCents = input.BudgetCents
	}
	if v := strings.TrimSpace(input.Status); v != "" {
		out.Status = v
	}
	out.UpdatedAt = s.now().UTC()

	if err := out.Validate(); err != nil {
		return campaign.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.campaignRepo.Update(ctx, out); err != nil {
		return campaign.Campaign{}, fmt.Errorf("update campaign: %w", err)
	}

	return out, nil
}

func (s *CampaignService) Get(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CampaignService.Get")
	defer span.End()

	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return campaign.Campaign{}, fmt.Errorf("%w: campaign_id is required", ErrInvalidInput)
	}

	found, exists, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	if !exists {
		return campaign.Campaign{}, fmt.Errorf("%w: campaign not found", ErrNotFound)
	}

	return found, nil
}

func (s *CampaignService) ListOpen(ctx context.Context) ([]campaign.Campaign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CampaignService.ListOpen")
	defer span.End()

	items, err := s.campaignRepo.ListByStatus(ctx, campaign.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("list open campaigns: %w", err)
	}

	return items, nil
}

func (s *CampaignService) ListMine(ctx context.Context, principal user.Principal) ([]campaign.Campaign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CampaignService.ListMine")
	defer span.End()

	items, err := s.campaignRepo.ListByBusiness(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by business: %w", err)
	}

	return items, nil
}
