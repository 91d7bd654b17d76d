package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

// IngestMatchScores accepts a batch of externally computed scores. The route
// is gated by the internal job token, not a user session.
func (h *Handler) IngestMatchScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatchScores")
	defer span.End()

	var req ingestMatchScoresRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.IngestMatchScoreInput, 0, len(req.Scores))
	for _, item := range req.Scores {
		inputs = append(inputs, usecase.IngestMatchScoreInput{
			AthleteID:  item.AthleteID,
			BusinessID: item.BusinessID,
			CampaignID: item.CampaignID,
			Score:      item.Score,
		})
	}

	stored, err := h.matchService.IngestScores(ctx, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest match scores failed", "count", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"ingested": stored})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListForPrincipal(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	found, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(found))
}
