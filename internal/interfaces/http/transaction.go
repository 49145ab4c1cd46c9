package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"imovel/internal/domain/transaction"
)

type TransactionHandler struct {
	service *transaction.Service
}

func NewTransactionHandler(service *transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type CreateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Payer       string  `json:"payer"`
	PropertyID  string  `json:"propertyId"`
	Status      string  `json:"status,omitempty"` // defaults to pending

	// Present when the transaction should be split into monthly installments.
	Installments *InstallmentsRequest `json:"installments,omitempty"`
}

type InstallmentsRequest struct {
	Count int `json:"count"`
	// When true, Amount is the purchase total and each sibling gets an equal
	// share. When false, Amount is already the per-installment value.
	AmountIsTotal bool `json:"amountIsTotal"`
}

type UpdateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Payer       string  `json:"payer"`
	PropertyID  string  `json:"propertyId"`
	Status      string  `json:"status"`
}

// HandleTransactions routes /api/transactions/ (list and create).
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTransactionByID routes /api/transactions/{id} (get, update, delete).
// DELETE removes the whole installment group when the target belongs to one.
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	transactionID := r.PathValue("id")
	if transactionID == "" {
		http.Error(w, "Transaction ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, transactionID)
	case http.MethodPut:
		h.handleUpdate(w, r, transactionID)
	case http.MethodDelete:
		h.handleDelete(w, r, transactionID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleToggleStatus routes /api/transactions/{id}/toggle-status. Flips one
// record between paid and pending without touching installment siblings.
func (h *TransactionHandler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	transactionID := r.PathValue("id")
	if transactionID == "" {
		http.Error(w, "Transaction ID is required", http.StatusBadRequest)
		return
	}

	toggled, err := h.service.ToggleStatus(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		log.Printf("Error toggling transaction %s: %v", transactionID, err)
		http.Error(w, "Failed to toggle transaction status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toggled)
}

// HandleDeletePlan routes /api/transactions/{id}/delete-plan. Returns what a
// delete of the given transaction would remove, without removing anything.
// Clients use it to confirm group-wide deletes before committing.
func (h *TransactionHandler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	transactionID := r.PathValue("id")
	if transactionID == "" {
		http.Error(w, "Transaction ID is required", http.StatusBadRequest)
		return
	}

	plan, err := h.service.PlanDelete(transactionID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		log.Printf("Error planning delete for transaction %s: %v", transactionID, err)
		http.Error(w, "Failed to plan delete", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	transactions := h.service.Snapshot()

	if propertyID := r.URL.Query().Get("propertyId"); propertyID != "" {
		view := transaction.ViewAll
		if v := r.URL.Query().Get("view"); v != "" {
			view = transaction.View(v)
			if !view.Valid() {
				http.Error(w, "Invalid view", http.StatusBadRequest)
				return
			}
		}
		transactions = transaction.FilterView(transactions, propertyID, view)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create transaction request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	status := transaction.Status(req.Status)
	if req.Status == "" {
		status = transaction.StatusPending
	}

	if req.Installments != nil {
		amount := req.Amount
		if req.Installments.AmountIsTotal && req.Installments.Count > 0 {
			amount = req.Amount / float64(req.Installments.Count)
		}

		tmpl := transaction.Template{
			Description: req.Description,
			Amount:      amount,
			Type:        transaction.Type(req.Type),
			Category:    transaction.Category(req.Category),
			Payer:       req.Payer,
			PropertyID:  req.PropertyID,
			Status:      status,
		}

		siblings, err := h.service.CreateInstallments(r.Context(), tmpl, req.Installments.Count, req.Date)
		if err != nil {
			if errors.Is(err, transaction.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Error creating installment group: %v", err)
			http.Error(w, "Failed to create installments", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(siblings)
		return
	}

	created, err := h.service.Create(r.Context(), transaction.CreateParams{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Type:        transaction.Type(req.Type),
		Category:    transaction.Category(req.Category),
		Payer:       req.Payer,
		PropertyID:  req.PropertyID,
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error creating transaction: %v", err)
		http.Error(w, "Failed to create transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *TransactionHandler) handleGet(w http.ResponseWriter, r *http.Request, transactionID string) {
	t, err := h.service.Get(transactionID)
	if err != nil {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

func (h *TransactionHandler) handleUpdate(w http.ResponseWriter, r *http.Request, transactionID string) {
	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update transaction request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), &transaction.Transaction{
		ID:          transactionID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Type:        transaction.Type(req.Type),
		Category:    transaction.Category(req.Category),
		Payer:       req.Payer,
		PropertyID:  req.PropertyID,
		Status:      transaction.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, transaction.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error updating transaction %s: %v", transactionID, err)
		http.Error(w, "Failed to update transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *TransactionHandler) handleDelete(w http.ResponseWriter, r *http.Request, transactionID string) {
	plan, err := h.service.PlanDelete(transactionID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		log.Printf("Error planning delete for transaction %s: %v", transactionID, err)
		http.Error(w, "Failed to delete transaction", http.StatusInternalServerError)
		return
	}

	if err := h.service.ExecuteDelete(r.Context(), plan); err != nil {
		log.Printf("Error deleting transaction %s: %v", transactionID, err)
		http.Error(w, "Failed to delete transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}
