package campaign

import "context"

type Repository interface {
	Create(ctx context.Context, c Campaign) error
	Update(ctx context.Context, c Campaign) error
	GetByID(ctx context.Context, campaignID string) (Campaign, bool, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Campaign, error)
	ListByStatus(ctx context.Context, status string) ([]Campaign, error)
}
