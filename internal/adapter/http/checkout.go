package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"amana-donations/internal/core/port"
)

// handleCheckout opens a payment-provider checkout session for a recurring
// daily donation. The request body is decoded into a port.CheckoutRequest.
// Business-rule refusals (closed signup window, invalid amount, no billable
// days) return HTTP 422 with the user-facing reason; unknown campaigns
// return HTTP 404, parsing errors HTTP 400 and internal failures HTTP 500.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req port.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.CampaignSlug == "" {
		http.Error(w, "missing campaign_slug", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.CreateCheckout(r.Context(), req)
	if err != nil {
		var rejection *port.RejectionError
		switch {
		case errors.Is(err, port.ErrCampaignNotFound):
			http.NotFound(w, r)
		case errors.As(err, &rejection):
			writeJSONError(w, rejection.Reason, http.StatusUnprocessableEntity)
		default:
			h.logger.Error("checkout error", slog.Any("error", err), slog.String("slug", req.CampaignSlug))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeJSONError writes a small JSON error body so clients can show the
// reason directly.
func writeJSONError(w http.ResponseWriter, reason string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason})
}
