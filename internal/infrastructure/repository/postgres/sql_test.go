package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

func TestTranslateError(t *testing.T) {
	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "23505"})
		if !errors.Is(err, storage.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("missing relation becomes unavailable", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "42P01"})
		if !errors.Is(err, storage.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("connection class becomes unavailable", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "08006"})
		if !errors.Is(err, storage.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("refused dial becomes unavailable", func(t *testing.T) {
		err := translateError(fmt.Errorf("dial tcp 127.0.0.1:5432: connection refused"))
		if !errors.Is(err, storage.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		base := fmt.Errorf("pq: syntax error")
		if got := translateError(base); got != base {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if got := translateError(nil); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("other")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestOptionalString(t *testing.T) {
	if v := optionalString("  "); v.Valid {
		t.Fatalf("blank string should be null")
	}
	if v := optionalString(" x "); !v.Valid || v.String != "x" {
		t.Fatalf("expected trimmed valid string, got %+v", v)
	}
}
