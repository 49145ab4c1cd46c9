package http

import (
	"encoding/json"
	"net/http"
	"time"

	"imovel/internal/domain/transaction"
)

// DashboardHandler serves the read-only aggregation endpoints. Everything is
// computed from the in-memory snapshot; no repository calls are made.
type DashboardHandler struct {
	service *transaction.Service
}

func NewDashboardHandler(service *transaction.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// HandleSummary routes /api/summary/. Returns paid and pending balances plus
// per-category totals for one property.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		http.Error(w, "propertyId is required", http.StatusBadRequest)
		return
	}

	summary := transaction.Summarize(h.service.Snapshot(), propertyID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// HandleCalendar routes /api/calendar/. Returns the per-day payment status of
// one month (overdue > paid > pending precedence per day).
func (h *DashboardHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		http.Error(w, "propertyId is required", http.StatusBadRequest)
		return
	}

	month := r.URL.Query().Get("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		http.Error(w, "Invalid month format (use YYYY-MM)", http.StatusBadRequest)
		return
	}

	today := time.Now().Format(transaction.DateLayout)
	days := transaction.CalendarMonth(h.service.Snapshot(), propertyID, month, today)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(days)
}

// HandlePayers routes /api/payers/. Returns paid expense totals per payer in
// fixed presentation order.
func (h *DashboardHandler) HandlePayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		http.Error(w, "propertyId is required", http.StatusBadRequest)
		return
	}

	totals := transaction.SummarizePayers(h.service.Snapshot(), propertyID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(totals)
}
