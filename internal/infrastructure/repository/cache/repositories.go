// Package cache decorates the read-heavy repositories with an in-process
// TTL cache. Writes invalidate by key prefix so stale reads never outlive a
// mutation on the same node.
package cache

import (
	"context"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	basecache "github.com/ekalbevoldog/contested/internal/platform/cache"
)

type CampaignRepository struct {
	next  campaign.Repository
	cache *basecache.Store
}

func NewCampaignRepository(next campaign.Repository, cache *basecache.Store) *CampaignRepository {
	return &CampaignRepository{next: next, cache: cache}
}

func (r *CampaignRepository) Create(ctx context.Context, c campaign.Campaign) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "campaign:")
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c campaign.Campaign) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "campaign:")
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, campaignID string) (campaign.Campaign, bool, error) {
	key := "campaign:id:" + campaignID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		return cachedCampaignByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return campaign.Campaign{}, false, err
	}

	cached, _ := v.(cachedCampaignByID)
	return cached.value, cached.exists, nil
}

func (r *CampaignRepository) ListByBusiness(ctx context.Context, businessID string) ([]campaign.Campaign, error) {
	return r.list(ctx, "campaign:business:"+businessID, func(ctx context.Context) ([]campaign.Campaign, error) {
		return r.next.ListByBusiness(ctx, businessID)
	})
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status string) ([]campaign.Campaign, error) {
	return r.list(ctx, "campaign:status:"+status, func(ctx context.Context) ([]campaign.Campaign, error) {
		return r.next.ListByStatus(ctx, status)
	})
}

func (r *CampaignRepository) list(ctx context.Context, key string, load func(context.Context) ([]campaign.Campaign, error)) ([]campaign.Campaign, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]campaign.Campaign(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]campaign.Campaign)
	return append([]campaign.Campaign(nil), items...), nil
}

type cachedCampaignByID struct {
	value  campaign.Campaign
	exists bool
}

type ProfileRepository struct {
	next  profile.Repository
	cache *basecache.Store
}

func NewProfileRepository(next profile.Repository, cache *basecache.Store) *ProfileRepository {
	return &ProfileRepository{next: next, cache: cache}
}

func (r *ProfileRepository) UpsertAthlete(ctx context.Context, p profile.Athlete) error {
	if err := r.next.UpsertAthlete(ctx, p); err != nil {
		return err
	}
	r.cache.Delete(ctx, "profile:athlete:"+p.UserID)
	return nil
}

func (r *ProfileRepository) GetAthleteByUserID(ctx context.Context, userID string) (profile.Athlete, bool, error) {
	key := "profile:athlete:" + userID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetAthleteByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedAthleteProfile{value: item, exists: exists}, nil
	})
	if err != nil {
		return profile.Athlete{}, false, err
	}

	cached, _ := v.(cachedAthleteProfile)
	return cached.value, cached.exists, nil
}

func (r *ProfileRepository) UpsertBusiness(ctx context.Context, p profile.Business) error {
	if err := r.next.UpsertBusiness(ctx, p); err != nil {
		return err
	}
	r.cache.Delete(ctx, "profile:business:"+p.UserID)
	return nil
}

func (r *ProfileRepository) GetBusinessByUserID(ctx context.Context, userID string) (profile.Business, bool, error) {
	key := "profile:business:" + userID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBusinessByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedBusinessProfile{value: item, exists: exists}, nil
	})
	if err != nil {
		return profile.Business{}, false, err
	}

	cached, _ := v.(cachedBusinessProfile)
	return cached.value, cached.exists, nil
}

type cachedAthleteProfile struct {
	value  profile.Athlete
	exists bool
}

type cachedBusinessProfile struct {
	value  profile.Business
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	if err := r.next.Upsert(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) ListByAthlete(ctx context.Context, athleteID string) ([]match.Match, error) {
	return r.list(ctx, "match:athlete:"+athleteID, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByAthlete(ctx, athleteID)
	})
}

func (r *MatchRepository) ListByBusiness(ctx context.Context, businessID string) ([]match.Match, error) {
	return r.list(ctx, "match:business:"+businessID, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByBusiness(ctx, businessID)
	})
}

func (r *MatchRepository) list(ctx context.Context, key string, load func(context.Context) ([]match.Match, error)) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}
