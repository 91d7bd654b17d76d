package usecase

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/sourcegraph/conc/pool"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/user"
)

type DashboardService struct {
	dashboardRepo dashboard.Repository
	campaignRepo  campaign.Repository
	matchRepo     match.Repository
	offerRepo     offer.Repository
	messageRepo   message.Repository
	now           func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.Repository,
	campaignRepo campaign.Repository,
	matchRepo match.Repository,
	offerRepo offer.Repository,
	messageRepo message.Repository,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		campaignRepo:  campaignRepo,
		matchRepo:     matchRepo,
		offerRepo:     offerRepo,
		messageRepo:   messageRepo,
		now:           time.Now,
	}
}

// SaveConfig stores the caller's widget layout. The layout is opaque: the
// only requirement is that it parses as JSON.
func (s *DashboardService) SaveConfig(ctx context.Context, principal user.Principal, layout []byte) (dashboard.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.SaveConfig")
	defer span.End()

	if len(layout) == 0 || !sonic.Valid(layout) {
		return dashboard.Config{}, fmt.Errorf("%w: layout must be a JSON document", ErrInvalidInput)
	}

	cfg := dashboard.Config{
		UserID:    principal.UserID,
		Layout:    append([]byte(nil), layout...),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.dashboardRepo.Upsert(ctx, cfg); err != nil {
		return dashboard.Config{}, fmt.Errorf("upsert dashboard config: %w", err)
	}

	return cfg, nil
}

func (s *DashboardService) GetConfig(ctx context.Context, principal user.Principal) (dashboard.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetConfig")
	defer span.End()

	cfg, exists, err := s.dashboardRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return dashboard.Config{}, fmt.Errorf("get dashboard config: %w", err)
	}
	if !exists {
		return dashboard.Config{
			UserID: principal.UserID,
			Layout: []byte("{}"),
		}, nil
	}

	return cfg, nil
}

// Summary fans out the per-entity counts concurrently; one slow backend read
// should not serialize the whole dashboard.
func (s *DashboardService) Summary(ctx context.Context, principal user.Principal) (dashboard.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Summary")
	defer span.End()

	var summary dashboard.Summary
	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		count, err := s.campaignCount(ctx, principal)
		if err != nil {
			return fmt.Errorf("count campaigns: %w", err)
		}
		summary.Campaigns = count
		return nil
	})

	p.Go(func(ctx context.Context) error {
		items, err := s.matchList(ctx, principal)
		if err != nil {
			return fmt.Errorf("count matches: %w", err)
		}
		summary.Matches = len(items)
		return nil
	})

	p.Go(func(ctx context.Context) error {
		items, err := s.offerList(ctx, principal)
		if err != nil {
			return fmt.Errorf("count offers: %w", err)
		}
		pending, resolved := 0, 0
		for _, item := range items {
			if item.Status == offer.StatusPending {
				pending++
			} else {
				resolved++
			}
		}
		summary.PendingOffers = pending
		summary.ResolvedOffers = resolved
		return nil
	})

	p.Go(func(ctx context.Context) error {
		sessions, err := s.messageRepo.ListSessionIDsByUser(ctx, principal.UserID)
		if err != nil {
			return fmt.Errorf("count message sessions: %w", err)
		}
		summary.MessageSessions = len(sessions)
		return nil
	})

	if err := p.Wait(); err != nil {
		return dashboard.Summary{}, err
	}

	return summary, nil
}

func (s *DashboardService) campaignCount(ctx context.Context, principal user.Principal) (int, error) {
	if principal.Role == user.RoleBusiness {
		items, err := s.campaignRepo.ListByBusiness(ctx, principal.UserID)
		if err != nil {
			return 0, err
		}
		return len(items), nil
	}

	items, err := s.campaignRepo.ListByStatus(ctx, campaign.StatusOpen)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *DashboardService) matchList(ctx context.Context, principal user.Principal) ([]match.Match, error) {
	if principal.Role == user.RoleBusiness {
		return s.matchRepo.ListByBusiness(ctx, principal.UserID)
	}
	return s.matchRepo.ListByAthlete(ctx, principal.UserID)
}

func (s *DashboardService) offerList(ctx context.Context, principal user.Principal) ([]offer.Offer, error) {
	if principal.Role == user.RoleBusiness {
		return s.offerRepo.ListByBusiness(ctx, principal.UserID)
	}
	return s.offerRepo.ListByAthlete(ctx, principal.UserID)
}
