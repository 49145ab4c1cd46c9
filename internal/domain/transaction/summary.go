package transaction

// CategoryTotals holds the paid and pending sums for one category.
type CategoryTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

// Summary aggregates the dashboard numbers for one property.
//
// PaidBalance is paid revenue minus paid expense. PendingBalance sums pending
// transactions signed by type (+revenue, -expense).
type Summary struct {
	PaidBalance    float64                    `json:"paidBalance"`
	PendingBalance float64                    `json:"pendingBalance"`
	Categories     map[Category]CategoryTotals `json:"categories"`
}

// Summarize computes the dashboard totals over the property's transactions.
func Summarize(ts []*Transaction, propertyID string) Summary {
	s := Summary{Categories: make(map[Category]CategoryTotals, len(Categories))}
	for _, c := range Categories {
		s.Categories[c] = CategoryTotals{}
	}

	for _, t := range ts {
		if t.PropertyID != propertyID {
			continue
		}
		ct := s.Categories[t.Category]
		switch t.Status {
		case StatusPaid:
			ct.Paid += t.Amount
			if t.Type == TypeRevenue {
				s.PaidBalance += t.Amount
			} else {
				s.PaidBalance -= t.Amount
			}
		case StatusPending:
			ct.Pending += t.Amount
			if t.Type == TypeRevenue {
				s.PendingBalance += t.Amount
			} else {
				s.PendingBalance -= t.Amount
			}
		}
		s.Categories[t.Category] = ct
	}

	return s
}

// PayerTotal is the paid expense sum attributed to one payer.
type PayerTotal struct {
	Payer string  `json:"payer"`
	Total float64 `json:"total"`
}

// SummarizePayers computes paid expense totals per enumerated payer,
// restricted to one property. Each payer accumulates only transactions tagged
// with its exact name; the catch-all payer is not a sum over the others.
// The result preserves the fixed payer order.
func SummarizePayers(ts []*Transaction, propertyID string) []PayerTotal {
	totals := make([]PayerTotal, len(Payers))
	for i, p := range Payers {
		totals[i] = PayerTotal{Payer: p}
	}

	index := make(map[string]int, len(Payers))
	for i, p := range Payers {
		index[p] = i
	}

	for _, t := range ts {
		if t.PropertyID != propertyID || t.Type != TypeExpense || t.Status != StatusPaid {
			continue
		}
		if i, ok := index[t.Payer]; ok {
			totals[i].Total += t.Amount
		}
	}

	return totals
}

// DayStatus is the calendar heat-map state of one date.
type DayStatus string

const (
	DayOverdue DayStatus = "overdue"
	DayPaid    DayStatus = "paid"
	DayPending DayStatus = "pending"
)

// StatusForDay classifies one date given its transactions and today's date.
// A date is overdue when any pending expense on it falls strictly before
// today, paid when every transaction is paid, pending otherwise. The second
// return value is false when the date has no transactions.
func StatusForDay(dayTransactions []*Transaction, today string) (DayStatus, bool) {
	if len(dayTransactions) == 0 {
		return "", false
	}

	allPaid := true
	for _, t := range dayTransactions {
		if t.Status == StatusPending {
			allPaid = false
			if t.Type == TypeExpense && t.Date < today {
				return DayOverdue, true
			}
		}
	}

	if allPaid {
		return DayPaid, true
	}
	return DayPending, true
}

// CalendarMonth maps each date of a month ("YYYY-MM") that has transactions
// to its heat-map status, restricted to one property.
func CalendarMonth(ts []*Transaction, propertyID, month, today string) map[string]DayStatus {
	byDay := make(map[string][]*Transaction)
	for _, t := range ts {
		if t.PropertyID != propertyID {
			continue
		}
		if len(t.Date) < len(month) || t.Date[:len(month)] != month {
			continue
		}
		byDay[t.Date] = append(byDay[t.Date], t)
	}

	statuses := make(map[string]DayStatus, len(byDay))
	for day, dayTransactions := range byDay {
		if status, ok := StatusForDay(dayTransactions, today); ok {
			statuses[day] = status
		}
	}
	return statuses
}

// View selects one of the transaction list screens.
type View string

const (
	ViewAll         View = "all"
	ViewRevenue     View = "revenue"
	ViewAcquisition View = "acquisition"
	ViewRenovation  View = "renovation"
	ViewMonthly     View = "monthly"
	ViewOther       View = "other"
)

func (v View) Valid() bool {
	switch v {
	case ViewAll, ViewRevenue, ViewAcquisition, ViewRenovation, ViewMonthly, ViewOther:
		return true
	}
	return false
}

// FilterView returns the property's transactions visible on the given view.
// The revenue view filters by type; the expense views filter by category.
func FilterView(ts []*Transaction, propertyID string, view View) []*Transaction {
	filtered := make([]*Transaction, 0, len(ts))
	for _, t := range ts {
		if t.PropertyID != propertyID {
			continue
		}
		switch view {
		case ViewRevenue:
			if t.Type != TypeRevenue {
				continue
			}
		case ViewAcquisition:
			if t.Category != CategoryAcquisition {
				continue
			}
		case ViewRenovation:
			if t.Category != CategoryRenovation {
				continue
			}
		case ViewMonthly:
			if t.Category != CategoryMonthly {
				continue
			}
		case ViewOther:
			if t.Category != CategoryOther {
				continue
			}
		}
		filtered = append(filtered, t)
	}
	return filtered
}
