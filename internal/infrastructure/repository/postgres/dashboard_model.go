package postgres

import (
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
)

type dashboardConfigTableModel struct {
	UserID    string    `db:"user_id"`
	Layout    []byte    `db:"layout"`
	UpdatedAt time.Time `db:"updated_at"`
}

func dashboardConfigFromRow(row dashboardConfigTableModel) dashboard.Config {
	return dashboard.Config{
		UserID:    row.UserID,
		Layout:    row.Layout,
		UpdatedAt: row.UpdatedAt,
	}
}
