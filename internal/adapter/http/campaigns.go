package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"amana-donations/internal/core/port"
)

// handleListCampaigns returns display cards for all published campaigns.
// Status labels and colors are resolved server-side against the current
// clock so clients can render them as opaque strings. Internal errors
// produce HTTP 500.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(cards); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleGetCampaign returns one campaign card by its {slug} path parameter.
// An optional `daily_amount` query parameter adds a billing preview for a
// subscriber joining now. Unknown slugs result in HTTP 404, a malformed
// amount in HTTP 400.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "missing slug", http.StatusBadRequest)
		return
	}

	var dailyAmount *decimal.Decimal
	if raw := r.URL.Query().Get("daily_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			http.Error(w, "invalid daily_amount", http.StatusBadRequest)
			return
		}
		dailyAmount = &amount
	}

	card, err := h.svc.GetCampaign(r.Context(), slug, dailyAmount)
	if err != nil {
		if errors.Is(err, port.ErrCampaignNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("get campaign error", slog.Any("error", err), slog.String("slug", slug))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(card); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
