package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req sendMessageRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sent, err := h.messageService.Send(ctx, principal, usecase.SendMessageInput{
		SessionID: req.SessionID,
		Body:      req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "send message failed", "user_id", principal.UserID, "session_id", req.SessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, messageToDTO(sent))
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMessages")
	defer span.End()

	sessionID := r.URL.Query().Get("session_id")
	messages, err := h.messageService.List(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]messageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, messageToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMessageSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMessageSessions")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sessions, err := h.messageService.Sessions(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list message sessions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessions)
}
