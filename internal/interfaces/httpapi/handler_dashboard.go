package httpapi

import (
	"net/http"
)

func (h *Handler) GetDashboardConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardConfig")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	config, err := h.dashboardService.GetConfig(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard config failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardConfigToDTO(config))
}

func (h *Handler) SaveDashboardConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveDashboardConfig")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveDashboardConfigRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.dashboardService.SaveConfig(ctx, principal, []byte(req.Layout))
	if err != nil {
		h.logger.WarnContext(ctx, "save dashboard config failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardConfigToDTO(saved))
}

func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardSummary")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.dashboardService.Summary(ctx, principal)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard summary failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardSummaryToDTO(summary))
}
