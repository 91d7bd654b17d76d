package httpapi

import (
	"net/http"

	"github.com/ekalbevoldog/contested/internal/usecase"
)

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCampaign")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createCampaignRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.campaignService.Create(ctx, principal, usecase.CreateCampaignInput{
		Title:       req.Title,
		Brief:       req.Brief,
		BudgetCents: req.BudgetCents,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create campaign failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, campaignToDTO(created))
}

func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCampaign")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateCampaignRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	campaignID := r.PathValue("campaignID")
	updated, err := h.campaignService.Update(ctx, principal, campaignID, usecase.UpdateCampaignInput{
		Title:       req.Title,
		Brief:       req.Brief,
		BudgetCents: req.BudgetCents,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update campaign failed", "user_id", principal.UserID, "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, campaignToDTO(updated))
}

func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCampaign")
	defer span.End()

	campaignID := r.PathValue("campaignID")
	found, err := h.campaignService.Get(ctx, campaignID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, campaignToDTO(found))
}

func (h *Handler) ListOpenCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOpenCampaigns")
	defer span.End()

	campaigns, err := h.campaignService.ListOpen(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list open campaigns failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, campaignToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMyCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyCampaigns")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	campaigns, err := h.campaignService.ListMine(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list my campaigns failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, campaignToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
