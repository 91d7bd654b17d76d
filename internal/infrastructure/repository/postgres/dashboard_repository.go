package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Upsert(ctx context.Context, c dashboard.Config) error {
	model := dashboardConfigTableModel{
		UserID:    c.UserID,
		Layout:    c.Layout,
		UpdatedAt: c.UpdatedAt,
	}

	query, args, err := qb.InsertModel("user_dashboard_configs", model, `ON CONFLICT (user_id)
DO UPDATE SET
    layout = EXCLUDED.layout,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert dashboard config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert dashboard config: %w", translateError(err))
	}

	return nil
}

func (r *DashboardRepository) GetByUserID(ctx context.Context, userID string) (dashboard.Config, bool, error) {
	query, args, err := qb.Select("*").From("user_dashboard_configs").
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return dashboard.Config{}, false, fmt.Errorf("build get dashboard config query: %w", err)
	}

	var row dashboardConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return dashboard.Config{}, false, nil
		}
		return dashboard.Config{}, false, fmt.Errorf("get dashboard config: %w", translateError(err))
	}

	return dashboardConfigFromRow(row), true, nil
}
