package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"imovel/internal/domain/property"
)

type PropertyHandler struct {
	service *property.Service
}

func NewPropertyHandler(service *property.Service) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type PropertyRequest struct {
	Name string `json:"name"`
}

// HandleProperties routes /api/properties/ (list and create).
func (h *PropertyHandler) HandleProperties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandlePropertyByID routes /api/properties/{id} (rename).
func (h *PropertyHandler) HandlePropertyByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.PathValue("id")
	if propertyID == "" {
		http.Error(w, "Property ID is required", http.StatusBadRequest)
		return
	}

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding rename property request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	renamed, err := h.service.Rename(r.Context(), propertyID, req.Name)
	if err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, property.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error renaming property %s: %v", propertyID, err)
		http.Error(w, "Failed to rename property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(renamed)
}

func (h *PropertyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.List())
}

func (h *PropertyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create property request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, property.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error creating property: %v", err)
		http.Error(w, "Failed to create property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
