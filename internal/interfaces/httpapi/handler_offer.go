package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.offerService.Create(ctx, principal, usecase.CreateOfferInput{
		CampaignID:  req.CampaignID,
		AthleteID:   req.AthleteID,
		MatchID:     req.MatchID,
		AmountCents: req.AmountCents,
		Terms:       req.Terms,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create offer failed", "user_id", principal.UserID, "campaign_id", req.CampaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, offerToDTO(created))
}

func (h *Handler) RespondOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RespondOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req respondOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	offerID := r.PathValue("offerID")
	updated, err := h.offerService.Respond(ctx, principal, offerID, usecase.RespondOfferInput{
		Action:       req.Action,
		CounterCents: req.CounterCents,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "respond offer failed", "user_id", principal.UserID, "offer_id", offerID, "action", req.Action, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerToDTO(updated))
}

func (h *Handler) CancelOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offerID := r.PathValue("offerID")
	updated, err := h.offerService.Cancel(ctx, principal, offerID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel offer failed", "user_id", principal.UserID, "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerToDTO(updated))
}

func (h *Handler) GetOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offerID := r.PathValue("offerID")
	found, err := h.offerService.Get(ctx, principal, offerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerToDTO(found))
}

func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOffers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offers, err := h.offerService.ListForPrincipal(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list offers failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]offerDTO, 0, len(offers))
	for _, o := range offers {
		items = append(items, offerToDTO(o))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
