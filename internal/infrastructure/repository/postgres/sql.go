package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// translateError maps driver failures onto the shared storage taxonomy. This
// is the only place pq error codes are inspected; repositories wrap whatever
// comes back without looking inside.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return storage.ErrConflict
		case pqErr.Code == "42P01",
			pqErr.Code.Class() == "08",
			pqErr.Code.Class() == "53",
			pqErr.Code.Class() == "57":
			return storage.ErrUnavailable
		}
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") {
		return storage.ErrUnavailable
	}

	return err
}

func optionalString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func optionalInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}
