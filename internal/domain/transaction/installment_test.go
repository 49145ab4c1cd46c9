package transaction

import (
	"errors"
	"math"
	"testing"
)

func testTemplate() Template {
	return Template{
		Description: "Reforma do telhado",
		Amount:      250,
		Type:        TypeExpense,
		Category:    CategoryRenovation,
		Payer:       "Cida",
		PropertyID:  "prop-1",
		Status:      StatusPending,
	}
}

func TestGenerateInstallments_GroupIdentity(t *testing.T) {
	siblings, err := GenerateInstallments(testTemplate(), 5, "2024-03-10")
	if err != nil {
		t.Fatalf("GenerateInstallments() failed: %v", err)
	}

	if len(siblings) != 5 {
		t.Fatalf("len(siblings) = %d, want 5", len(siblings))
	}

	groupID := siblings[0].Installment.GroupID
	if groupID == "" {
		t.Fatal("group id is empty")
	}

	ids := make(map[string]bool)
	for i, s := range siblings {
		if s.Installment == nil {
			t.Fatalf("sibling %d has no installment record", i)
		}
		if s.Installment.GroupID != groupID {
			t.Errorf("sibling %d groupId = %q, want %q", i, s.Installment.GroupID, groupID)
		}
		if s.Installment.Current != i+1 {
			t.Errorf("sibling %d current = %d, want %d", i, s.Installment.Current, i+1)
		}
		if s.Installment.Total != 5 {
			t.Errorf("sibling %d total = %d, want 5", i, s.Installment.Total)
		}
		if s.ID == "" || ids[s.ID] {
			t.Errorf("sibling %d id %q is empty or duplicated", i, s.ID)
		}
		ids[s.ID] = true
		if s.ID == groupID {
			t.Errorf("sibling %d id collides with group id", i)
		}
	}
}

func TestGenerateInstallments_ConstantAmount(t *testing.T) {
	siblings, err := GenerateInstallments(testTemplate(), 4, "2024-03-10")
	if err != nil {
		t.Fatalf("GenerateInstallments() failed: %v", err)
	}

	var sum float64
	for i, s := range siblings {
		if s.Amount != 250 {
			t.Errorf("sibling %d amount = %v, want 250", i, s.Amount)
		}
		sum += s.Amount
	}
	if math.Abs(sum-1000) > 1e-9 {
		t.Errorf("group sum = %v, want 1000", sum)
	}
}

func TestGenerateInstallments_DateAdvancement(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		count     int
		wantDates []string
	}{
		{
			name:      "mid-month day is preserved",
			startDate: "2024-03-10",
			count:     3,
			wantDates: []string{"2024-03-10", "2024-04-10", "2024-05-10"},
		},
		{
			name:      "day 31 rolls forward through February",
			startDate: "2024-01-31",
			count:     3,
			wantDates: []string{"2024-01-31", "2024-03-02", "2024-03-31"},
		},
		{
			name:      "crosses year boundary",
			startDate: "2024-11-15",
			count:     3,
			wantDates: []string{"2024-11-15", "2024-12-15", "2025-01-15"},
		},
		{
			name:      "day 31 into a 30-day month rolls to the 1st",
			startDate: "2024-03-31",
			count:     2,
			wantDates: []string{"2024-03-31", "2024-05-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			siblings, err := GenerateInstallments(testTemplate(), tt.count, tt.startDate)
			if err != nil {
				t.Fatalf("GenerateInstallments() failed: %v", err)
			}
			for i, want := range tt.wantDates {
				if siblings[i].Date != want {
					t.Errorf("sibling %d date = %q, want %q", i, siblings[i].Date, want)
				}
			}
		})
	}
}

func TestGenerateInstallments_CreatedAtIsStrictlyIncreasing(t *testing.T) {
	siblings, err := GenerateInstallments(testTemplate(), 6, "2024-03-10")
	if err != nil {
		t.Fatalf("GenerateInstallments() failed: %v", err)
	}

	for i := 1; i < len(siblings); i++ {
		if siblings[i].CreatedAt <= siblings[i-1].CreatedAt {
			t.Errorf("createdAt not strictly increasing at %d: %d then %d",
				i, siblings[i-1].CreatedAt, siblings[i].CreatedAt)
		}
	}
}

func TestGenerateInstallments_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Template)
		count     int
		startDate string
	}{
		{name: "count below minimum", count: 1, startDate: "2024-03-10"},
		{name: "count above maximum", count: 61, startDate: "2024-03-10"},
		{name: "zero amount", count: 3, startDate: "2024-03-10", mutate: func(tmpl *Template) { tmpl.Amount = 0 }},
		{name: "negative amount", count: 3, startDate: "2024-03-10", mutate: func(tmpl *Template) { tmpl.Amount = -10 }},
		{name: "NaN amount", count: 3, startDate: "2024-03-10", mutate: func(tmpl *Template) { tmpl.Amount = math.NaN() }},
		{name: "infinite amount", count: 3, startDate: "2024-03-10", mutate: func(tmpl *Template) { tmpl.Amount = math.Inf(1) }},
		{name: "malformed start date", count: 3, startDate: "10/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := testTemplate()
			if tt.mutate != nil {
				tt.mutate(&tmpl)
			}
			_, err := GenerateInstallments(tmpl, tt.count, tt.startDate)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("GenerateInstallments() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
