package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"imovel/internal/domain/property"
	"imovel/internal/domain/report"
	"imovel/internal/domain/transaction"
)

type ReportHandler struct {
	transactions *transaction.Service
	properties   *property.Service
	reports      *report.Service
}

func NewReportHandler(transactions *transaction.Service, properties *property.Service, reports *report.Service) *ReportHandler {
	return &ReportHandler{
		transactions: transactions,
		properties:   properties,
		reports:      reports,
	}
}

// HandleReport routes /api/report/. Streams a PDF statement of one property's
// full transaction history.
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("propertyId")
	if propertyID == "" {
		http.Error(w, "propertyId is required", http.StatusBadRequest)
		return
	}

	prop, err := h.properties.Get(propertyID)
	if err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting property %s for report: %v", propertyID, err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	transactions := transaction.FilterView(h.transactions.Snapshot(), propertyID, transaction.ViewAll)

	pdf, err := h.reports.Generate(prop.Name, transactions, now)
	if err != nil {
		log.Printf("Error generating report for property %s: %v", propertyID, err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("relatorio_%s_%d.pdf", slugify(prop.Name), now.Unix())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(pdf)
}

// slugify lowercases a property name and keeps only safe filename characters.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "imovel"
	}
	return b.String()
}
