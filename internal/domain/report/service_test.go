package report

import (
	"bytes"
	"testing"
	"time"

	"imovel/internal/domain/transaction"
)

func TestGenerate(t *testing.T) {
	ts := []*transaction.Transaction{
		{
			ID:          "1",
			Description: "Aluguel",
			Amount:      1200,
			Date:        "2024-05-05",
			Type:        transaction.TypeRevenue,
			Category:    transaction.CategoryRevenue,
			Payer:       "Todos",
			PropertyID:  "prop-1",
			Status:      transaction.StatusPaid,
		},
		{
			ID:          "2",
			Description: "Reforma do telhado",
			Amount:      250,
			Date:        "2024-05-10",
			Type:        transaction.TypeExpense,
			Category:    transaction.CategoryRenovation,
			Payer:       "Cida",
			PropertyID:  "prop-1",
			Status:      transaction.StatusPending,
			Installment: &transaction.Installment{GroupID: "g1", Current: 2, Total: 4},
		},
	}

	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	pdf, err := NewService().Generate("Apartamento Centro", ts, now)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(pdf) < 1000 {
		t.Errorf("PDF suspiciously small: %d bytes", len(pdf))
	}
}

func TestGenerate_EmptyTransactionList(t *testing.T) {
	pdf, err := NewService().Generate("Casa de Praia", nil, time.Now())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
