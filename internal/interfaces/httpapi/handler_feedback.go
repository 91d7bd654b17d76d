package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFeedback")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createFeedbackRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.feedbackService.Create(ctx, principal, usecase.CreateFeedbackInput{
		SubjectID: req.SubjectID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create feedback failed", "user_id", principal.UserID, "subject_id", req.SubjectID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, feedbackToDTO(created))
}

func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFeedback")
	defer span.End()

	subjectID := r.URL.Query().Get("subject_id")
	items, err := h.feedbackService.ListBySubject(ctx, subjectID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]feedbackDTO, 0, len(items))
	for _, f := range items {
		out = append(out, feedbackToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ModerateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ModerateFeedback")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req moderateFeedbackRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	feedbackID := r.PathValue("feedbackID")
	moderated, err := h.feedbackService.Moderate(ctx, principal, feedbackID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "moderate feedback failed", "user_id", principal.UserID, "feedback_id", feedbackID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedbackToDTO(moderated))
}
