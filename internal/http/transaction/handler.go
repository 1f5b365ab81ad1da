package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tdnguyen/finsight/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/income-expenditure", h.incomeExpenditure)
	r.Get("/overview", h.overview)
	r.Get("/investment", h.investment)
	r.Get("/saving", h.saving)
	r.Get("/summary", h.summary)
	r.Get("/balance-trends", h.balanceTrends)
	r.Get("/expense-tree", h.expenseTree)
	r.Get("/accounts", h.accounts)
	r.Get("/category-breakdown", h.categoryBreakdown)
	r.Get("/house-fee", h.houseFee)
	r.Get("/highlights", h.highlights)
	r.Post("/reload", h.reload)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	params := transaction.ListParams{
		Search:    r.URL.Query().Get("search"),
		Limit:     queryInt(r, "limit", 10),
		Offset:    queryInt(r, "offset", 0),
		SortBy:    transaction.Field(queryDefault(r, "sort_by", string(transaction.FieldTransactionDate))),
		Reverse:   queryBool(r, "order_by"),
		StartDate: queryDate(r, "start_date"),
		EndDate:   queryDate(r, "end_date"),
		Clean:     queryBool(r, "clean"),
	}

	writeJSON(w, toResponseList(h.svc.List(r.Context(), params)))
}

func (h *Handler) incomeExpenditure(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.IncomeExpenditure(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date"))
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Overview(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date")))
}

func (h *Handler) investment(w http.ResponseWriter, r *http.Request) {
	txs := h.svc.Investment(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date"))
	writeJSON(w, toResponseList(txs))
}

func (h *Handler) saving(w http.ResponseWriter, r *http.Request) {
	txs := h.svc.Saving(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date"))
	writeJSON(w, toResponseList(txs))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Summary(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date")))
}

func (h *Handler) balanceTrends(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.BalanceTrends(
		r.Context(),
		queryInt(r, "offset", 0),
		queryInt(r, "limit", -1),
		queryDate(r, "start_date"),
		queryDate(r, "end_date"),
	)
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) expenseTree(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.ExpenseTree(
		r.Context(),
		queryInt(r, "offset", 0),
		queryInt(r, "limit", -1),
		queryDate(r, "start_date"),
		queryDate(r, "end_date"),
	)
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.Accounts(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date"))
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) categoryBreakdown(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.CategoryBreakdown(
		r.Context(),
		r.URL.Query().Get("prefix"),
		queryInt(r, "top", 6),
		queryDate(r, "start_date"),
		queryDate(r, "end_date"),
	)
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) houseFee(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.HouseFee(r.Context(), queryDate(r, "start_date"), queryDate(r, "end_date"))
	writeJSON(w, orEmpty(rows))
}

func (h *Handler) highlights(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Highlights(
		r.Context(),
		queryInt(r, "n", 5),
		queryDate(r, "start_date"),
		queryDate(r, "end_date"),
	)

	writeJSON(w, highlightsResponse{
		Latest:      toResponseList(result.Latest),
		TopExpenses: toResponseList(result.TopExpenses),
	})
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.Reload(r.Context())
	if err != nil {
		slog.Error("reloading snapshot", "error", err)
		http.Error(w, "source unavailable", http.StatusBadGateway)

		return
	}

	writeJSON(w, reloadResponse{SnapshotID: id.String()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

func queryDefault(r *http.Request, name, fallback string) string {
	if s := r.URL.Query().Get(name); s != "" {
		return s
	}

	return fallback
}

// queryDate parses a YYYY-MM-DD query parameter. Absent or malformed
// values mean "no bound": the dashboard never sees a 400 for a date
// it failed to format.
func queryDate(r *http.Request, name string) *time.Time {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}

	return &t
}
