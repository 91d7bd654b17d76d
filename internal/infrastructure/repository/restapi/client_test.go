package restapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

func TestTranslateStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want error
	}{
		{name: "ok", code: http.StatusOK, want: nil},
		{name: "created", code: http.StatusCreated, want: nil},
		{name: "not found is empty result", code: http.StatusNotFound, want: nil},
		{name: "not acceptable is empty result", code: http.StatusNotAcceptable, want: nil},
		{name: "conflict", code: http.StatusConflict, want: storage.ErrConflict},
		{name: "unauthorized", code: http.StatusUnauthorized, want: storage.ErrUnavailable},
		{name: "forbidden", code: http.StatusForbidden, want: storage.ErrUnavailable},
		{name: "server error", code: http.StatusBadGateway, want: storage.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := translateStatus(tc.code)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("translateStatus(%d) = %v, want nil", tc.code, err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("translateStatus(%d) = %v, want %v", tc.code, err, tc.want)
			}
		})
	}
}

func TestTranslateStatusUnexpected(t *testing.T) {
	err := translateStatus(http.StatusTeapot)
	if err == nil {
		t.Fatal("expected error for unexpected status")
	}
	if errors.Is(err, storage.ErrUnavailable) || errors.Is(err, storage.ErrConflict) {
		t.Fatalf("unexpected status must not map to a storage error, got %v", err)
	}
}
