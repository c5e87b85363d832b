package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly-spend", h.monthlySpend)
	r.Get("/monthly-spend/categories", h.monthlySpendByCategory)
	r.Get("/daily-spend", h.dailySpend)
	r.Get("/daily-category-balance", h.dailyCategoryBalance)
	r.Get("/account-balances", h.accountBalances)
	r.Get("/snapshot", h.snapshot)
}

func (h *Handler) monthlySpend(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.MonthlySpendSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toMonthlySpend(rows))
}

func (h *Handler) monthlySpendByCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.MonthlySpendByCategory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toCategorySpend(rows))
}

func (h *Handler) dailySpend(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.DailySpend(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toDailySpend(rows))
}

func (h *Handler) dailyCategoryBalance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.DailyCategoryBalance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toDailyCategory(rows))
}

func (h *Handler) accountBalances(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.MonthlyAccountBalance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toAccountBalances(rows))
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toSnapshot(snap))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
