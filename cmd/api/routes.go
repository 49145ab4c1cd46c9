package main

import (
	"log"
	"net/http"

	httphandlers "imovel/internal/interfaces/http"
	"imovel/internal/shared/config"
	"imovel/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Properties
	mux.HandleFunc("/api/properties/", deps.PropertyHandler.HandleProperties)
	mux.HandleFunc("/api/properties/{id}", deps.PropertyHandler.HandlePropertyByID)

	// Transactions
	mux.HandleFunc("/api/transactions/", deps.TransactionHandler.HandleTransactions)
	mux.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.HandleTransactionByID)
	mux.HandleFunc("/api/transactions/{id}/toggle-status", deps.TransactionHandler.HandleToggleStatus)
	mux.HandleFunc("/api/transactions/{id}/delete-plan", deps.TransactionHandler.HandleDeletePlan)

	// Dashboard aggregations
	mux.HandleFunc("/api/summary/", deps.DashboardHandler.HandleSummary)
	mux.HandleFunc("/api/calendar/", deps.DashboardHandler.HandleCalendar)
	mux.HandleFunc("/api/payers/", deps.DashboardHandler.HandlePayers)

	// PDF report
	mux.HandleFunc("/api/report/", deps.ReportHandler.HandleReport)

	// Apply global middleware
	var handler http.Handler = mux
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}
	handler = middleware.Logging(middleware.CORS(handler))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Println("TLS security middleware enabled (HSTS)")
	}

	return handler
}
