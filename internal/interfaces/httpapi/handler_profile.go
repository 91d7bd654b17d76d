package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) SaveAthleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveAthleteProfile")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveAthleteProfileRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.profileService.SaveAthleteProfile(ctx, principal, usecase.SaveAthleteProfileInput{
		DisplayName: req.DisplayName,
		Sport:       req.Sport,
		League:      req.League,
		Bio:         req.Bio,
		SocialReach: req.SocialReach,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save athlete profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, athleteProfileToDTO(saved))
}

func (h *Handler) GetAthleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthleteProfile")
	defer span.End()

	userID := r.PathValue("userID")
	found, err := h.profileService.GetAthleteProfile(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, athleteProfileToDTO(found))
}

func (h *Handler) SaveBusinessProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveBusinessProfile")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveBusinessProfileRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.profileService.SaveBusinessProfile(ctx, principal, usecase.SaveBusinessProfileInput{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Website:     req.Website,
		Bio:         req.Bio,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save business profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, businessProfileToDTO(saved))
}

func (h *Handler) GetBusinessProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBusinessProfile")
	defer span.End()

	userID := r.PathValue("userID")
	found, err := h.profileService.GetBusinessProfile(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, businessProfileToDTO(found))
}
