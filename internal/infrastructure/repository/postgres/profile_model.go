package postgres

import (
	"database/sql"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/profile"
)

type athleteProfileTableModel struct {
	UserID      string         `db:"user_id"`
	DisplayName string         `db:"display_name"`
	Sport       string         `db:"sport"`
	League      sql.NullString `db:"league"`
	Bio         sql.NullString `db:"bio"`
	SocialReach int64          `db:"social_reach"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type businessProfileTableModel struct {
	UserID      string         `db:"user_id"`
	CompanyName string         `db:"company_name"`
	Industry    sql.NullString `db:"industry"`
	Website     sql.NullString `db:"website"`
	Bio         sql.NullString `db:"bio"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func athleteProfileFromRow(row athleteProfileTableModel) profile.Athlete {
	return profile.Athlete{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		Sport:       row.Sport,
		League:      row.League.String,
		Bio:         row.Bio.String,
		SocialReach: row.SocialReach,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func businessProfileFromRow(row businessProfileTableModel) profile.Business {
	return profile.Business{
		UserID:      row.UserID,
		CompanyName: row.CompanyName,
		Industry:    row.Industry.String,
		Website:     row.Website.String,
		Bio:         row.Bio.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
