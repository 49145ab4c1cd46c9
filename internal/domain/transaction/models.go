package transaction

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// DateLayout is the wire format for transaction dates (no time component).
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// Type discriminates revenues from expenses. The amount is always stored
// positive; the sign is implied by the type.
type Type string

const (
	TypeRevenue Type = "revenue"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeRevenue || t == TypeExpense
}

// Category classifies a transaction. By convention revenue-type transactions
// use CategoryRevenue and expense-type transactions use one of the rest.
type Category string

const (
	CategoryRevenue     Category = "revenue"
	CategoryAcquisition Category = "acquisition"
	CategoryRenovation  Category = "renovation"
	CategoryMonthly     Category = "monthly"
	CategoryOther       Category = "other"
)

// Categories is the fixed presentation order of all categories.
var Categories = []Category{
	CategoryRevenue,
	CategoryAcquisition,
	CategoryRenovation,
	CategoryMonthly,
	CategoryOther,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryRevenue, CategoryAcquisition, CategoryRenovation, CategoryMonthly, CategoryOther:
		return true
	}
	return false
}

// Label returns the pt-BR display label used by views and the PDF report.
func (c Category) Label() string {
	switch c {
	case CategoryRevenue:
		return "RECEITAS"
	case CategoryAcquisition:
		return "AQUISIÇÃO"
	case CategoryRenovation:
		return "REFORMA"
	case CategoryMonthly:
		return "MENSAIS"
	case CategoryOther:
		return "OUTROS"
	}
	return string(c)
}

// Status is the settlement state, independent of the scheduled date.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

func (s Status) Valid() bool {
	return s == StatusPaid || s == StatusPending
}

func (s Status) Label() string {
	if s == StatusPaid {
		return "Pago"
	}
	return "Pendente"
}

// Toggle flips paid <-> pending.
func (s Status) Toggle() Status {
	if s == StatusPaid {
		return StatusPending
	}
	return StatusPaid
}

// PayerEveryone is the catch-all payer. It accumulates only transactions
// explicitly tagged with it, never a sum over the other payers.
const PayerEveryone = "Todos"

// Payers is the fixed ordered list of contributors.
var Payers = []string{PayerEveryone, "Cida", "Michell", "Paulo", "William"}

func IsValidPayer(name string) bool {
	for _, p := range Payers {
		if p == name {
			return true
		}
	}
	return false
}

// Installment links a transaction to its sibling group. Current is 1-based.
type Installment struct {
	GroupID string `json:"groupId" firestore:"groupId"`
	Current int    `json:"current" firestore:"current"`
	Total   int    `json:"total" firestore:"total"`
}

// Transaction is the atomic financial record. A nil Installment means the
// record is standalone: created once, mutated in place, deleted individually.
// A non-nil Installment puts the record in the group lifecycle: created as an
// atomic batch with its siblings and deleted group-wide.
type Transaction struct {
	ID          string       `json:"id" firestore:"id"`
	Description string       `json:"description" firestore:"description"`
	Amount      float64      `json:"amount" firestore:"amount"`
	Date        string       `json:"date" firestore:"date"` // YYYY-MM-DD
	Type        Type         `json:"type" firestore:"type"`
	Category    Category     `json:"category" firestore:"category"`
	Payer       string       `json:"payer" firestore:"payer"`
	PropertyID  string       `json:"propertyId" firestore:"propertyId"`
	Status      Status       `json:"status" firestore:"status"`
	Installment *Installment `json:"installment,omitempty" firestore:"installment,omitempty"`
	CreatedAt   int64        `json:"createdAt" firestore:"createdAt"` // unix millis, ordering tie-break only
}

// IsInstallment reports whether the transaction belongs to a sibling group.
func (t *Transaction) IsInstallment() bool {
	return t.Installment != nil
}

// GroupID returns the sibling group id, if any.
func (t *Transaction) GroupID() (string, bool) {
	if t.Installment == nil {
		return "", false
	}
	return t.Installment.GroupID, true
}

// Validate checks the record fields shared by create and update paths.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: amount must be a positive finite number", ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: invalid type %q", ErrInvalidInput, t.Type)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", ErrInvalidInput, t.Category)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, t.Status)
	}
	if !IsValidPayer(t.Payer) {
		return fmt.Errorf("%w: invalid payer %q", ErrInvalidInput, t.Payer)
	}
	if t.PropertyID == "" {
		return fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}
	return nil
}

// SortByDateDesc orders transactions newest date first. Records on the same
// date fall back to CreatedAt (newest first), then ID, so ordering is total.
func SortByDateDesc(ts []*Transaction) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Date != ts[j].Date {
			return ts[i].Date > ts[j].Date
		}
		if ts[i].CreatedAt != ts[j].CreatedAt {
			return ts[i].CreatedAt > ts[j].CreatedAt
		}
		return ts[i].ID > ts[j].ID
	})
}
