package main

import (
	"context"
	"log"

	"imovel/internal/domain/property"
	"imovel/internal/domain/report"
	"imovel/internal/domain/transaction"
	fsinfra "imovel/internal/infrastructure/firestore"
	httphandlers "imovel/internal/interfaces/http"
	"imovel/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Firestore *fsinfra.Client

	// Services
	TransactionService *transaction.Service
	PropertyService    *property.Service

	// Handlers
	PropertyHandler    *httphandlers.PropertyHandler
	TransactionHandler *httphandlers.TransactionHandler
	DashboardHandler   *httphandlers.DashboardHandler
	ReportHandler      *httphandlers.ReportHandler
}

// NewDependencies initializes all application dependencies and loads the
// initial state snapshots from the store.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	client, err := fsinfra.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		return nil, err
	}
	log.Println("Connected to Firestore")

	// Initialize repositories
	transactionRepo := fsinfra.NewTransactionRepository(client)
	propertyRepo := fsinfra.NewPropertyRepository(client)

	// Initialize domain services
	transactionService := transaction.NewService(transactionRepo)
	propertyService := property.NewService(propertyRepo)
	reportService := report.NewService()

	// Load initial snapshots (seeds default properties on first run)
	if err := propertyService.Load(ctx); err != nil {
		client.Close()
		return nil, err
	}
	if err := transactionService.Load(ctx); err != nil {
		client.Close()
		return nil, err
	}
	log.Printf("Loaded %d properties and %d transactions",
		len(propertyService.List()), len(transactionService.Snapshot()))

	// Initialize handlers
	propertyHandler := httphandlers.NewPropertyHandler(propertyService)
	transactionHandler := httphandlers.NewTransactionHandler(transactionService)
	dashboardHandler := httphandlers.NewDashboardHandler(transactionService)
	reportHandler := httphandlers.NewReportHandler(transactionService, propertyService, reportService)

	return &Dependencies{
		Firestore:          client,
		TransactionService: transactionService,
		PropertyService:    propertyService,
		PropertyHandler:    propertyHandler,
		TransactionHandler: transactionHandler,
		DashboardHandler:   dashboardHandler,
		ReportHandler:      reportHandler,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Firestore != nil {
		d.Firestore.Close()
	}
}
