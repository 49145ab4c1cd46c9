package transaction

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Installment count bounds. The upper bound mirrors the entry form limit.
const (
	MinInstallments = 2
	MaxInstallments = 60
)

// Template carries the user-entered fields shared by every generated sibling.
// Amount is the resolved per-installment value: when the user entered a total,
// the division by the installment count happens at the request boundary, not
// here. The generator's only numeric contract is that every sibling carries
// the same amount.
type Template struct {
	Description string
	Amount      float64
	Type        Type
	Category    Category
	Payer       string
	PropertyID  string
	Status      Status
}

// GenerateInstallments expands a template into count dated siblings sharing a
// freshly generated group id.
//
// Sibling i (0-indexed) is dated startDate advanced by i calendar months.
// Month advancement uses time.Time normalization, so a day-of-month that does
// not exist in the target month rolls forward: 2024-01-31 advanced one month
// normalizes to 2024-03-02. CreatedAt increases strictly across the sequence
// so same-date siblings sort deterministically in generation order.
func GenerateInstallments(tmpl Template, count int, startDate string) ([]*Transaction, error) {
	if count < MinInstallments || count > MaxInstallments {
		return nil, fmt.Errorf("%w: installment count must be between %d and %d",
			ErrInvalidInput, MinInstallments, MaxInstallments)
	}
	if tmpl.Amount <= 0 || math.IsNaN(tmpl.Amount) || math.IsInf(tmpl.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a positive finite number", ErrInvalidInput)
	}

	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidInput)
	}

	groupID := uuid.NewString()
	base := time.Now().UnixMilli()

	siblings := make([]*Transaction, 0, count)
	for i := 0; i < count; i++ {
		siblings = append(siblings, &Transaction{
			ID:          uuid.NewString(),
			Description: tmpl.Description,
			Amount:      tmpl.Amount,
			Date:        start.AddDate(0, i, 0).Format(DateLayout),
			Type:        tmpl.Type,
			Category:    tmpl.Category,
			Payer:       tmpl.Payer,
			PropertyID:  tmpl.PropertyID,
			Status:      tmpl.Status,
			Installment: &Installment{
				GroupID: groupID,
				Current: i + 1,
				Total:   count,
			},
			CreatedAt: base + int64(i),
		})
	}

	return siblings, nil
}
