package transaction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CreateParams contains parameters for creating a standalone transaction.
type CreateParams struct {
	Description string
	Amount      float64
	Date        string
	Type        Type
	Category    Category
	Payer       string
	PropertyID  string
	Status      Status
}

// DeleteScope tells a caller how far a delete will reach.
type DeleteScope string

const (
	DeleteScopeSingle DeleteScope = "single"
	DeleteScopeGroup  DeleteScope = "group"
)

// DeletePlan is the result of planning a delete: a pure description of what
// ExecuteDelete will remove, inspectable before committing. Group-scoped
// plans list every sibling id.
type DeletePlan struct {
	Scope         DeleteScope `json:"scope"`
	TransactionID string      `json:"transactionId"`
	GroupID       string      `json:"groupId,omitempty"`
	AffectedIDs   []string    `json:"affectedIds"`
}

// Service coordinates transaction state: it owns the in-memory snapshot of
// the full transaction list, dispatches mutations to the repository and
// reconciles the snapshot only after the gateway call succeeds. A failed
// persistence call leaves local state untouched.
type Service struct {
	repo Repository

	mu    sync.RWMutex
	cache []*Transaction
}

// NewService creates a transaction service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load replaces the in-memory snapshot with the repository's current state,
// sorted date-descending. Called on startup and after batch creates.
func (s *Service) Load(ctx context.Context) error {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	SortByDateDesc(ts)

	s.mu.Lock()
	s.cache = ts
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current transaction list. Callers must not
// mutate the returned records.
func (s *Service) Snapshot() []*Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Transaction, len(s.cache))
	copy(out, s.cache)
	return out
}

// Get returns the cached transaction with the given id.
func (s *Service) Get(id string) (*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.cache {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrTransactionNotFound
}

// Create persists one standalone transaction and inserts it into the
// snapshot.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	t := &Transaction{
		ID:          uuid.NewString(),
		Description: params.Description,
		Amount:      params.Amount,
		Date:        params.Date,
		Type:        params.Type,
		Category:    params.Category,
		Payer:       params.Payer,
		PropertyID:  params.PropertyID,
		Status:      params.Status,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.mu.Lock()
	s.cache = append(s.cache, t)
	SortByDateDesc(s.cache)
	s.mu.Unlock()

	return t, nil
}

// CreateInstallments expands the template into count dated siblings, persists
// them as one atomic batch and reloads the snapshot from the store.
func (s *Service) CreateInstallments(ctx context.Context, tmpl Template, count int, startDate string) ([]*Transaction, error) {
	siblings, err := GenerateInstallments(tmpl, count, startDate)
	if err != nil {
		return nil, err
	}
	for _, t := range siblings {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateBatch(ctx, siblings); err != nil {
		return nil, fmt.Errorf("failed to create installment batch: %w", err)
	}

	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return siblings, nil
}

// Update replaces one record by id. It never cascades to installment
// siblings: editing one member leaves the rest of the group untouched.
func (s *Service) Update(ctx context.Context, t *Transaction) (*Transaction, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(t.ID)
	if err != nil {
		return nil, err
	}

	// Identity and group membership are immutable after creation.
	updated := *t
	updated.CreatedAt = existing.CreatedAt
	updated.Installment = existing.Installment

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.mu.Lock()
	for i, cached := range s.cache {
		if cached.ID == updated.ID {
			s.cache[i] = &updated
			break
		}
	}
	SortByDateDesc(s.cache)
	s.mu.Unlock()

	return &updated, nil
}

// ToggleStatus flips one record between paid and pending. Never cascades.
func (s *Service) ToggleStatus(ctx context.Context, id string) (*Transaction, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	toggled := *existing
	toggled.Status = existing.Status.Toggle()
	return s.Update(ctx, &toggled)
}

// PlanDelete describes what deleting the given transaction would remove. For
// an installment member the plan covers every sibling in the group; there is
// no partial-group delete. The plan is a pure query with no side effects.
func (s *Service) PlanDelete(id string) (*DeletePlan, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	groupID, grouped := t.GroupID()
	if !grouped {
		return &DeletePlan{
			Scope:         DeleteScopeSingle,
			TransactionID: id,
			AffectedIDs:   []string{id},
		}, nil
	}

	plan := &DeletePlan{
		Scope:         DeleteScopeGroup,
		TransactionID: id,
		GroupID:       groupID,
	}
	s.mu.RLock()
	for _, cached := range s.cache {
		if gid, ok := cached.GroupID(); ok && gid == groupID {
			plan.AffectedIDs = append(plan.AffectedIDs, cached.ID)
		}
	}
	s.mu.RUnlock()

	return plan, nil
}

// ExecuteDelete commits a previously planned delete.
func (s *Service) ExecuteDelete(ctx context.Context, plan *DeletePlan) error {
	if plan == nil {
		return fmt.Errorf("%w: nil delete plan", ErrInvalidInput)
	}

	switch plan.Scope {
	case DeleteScopeSingle:
		if err := s.repo.Delete(ctx, plan.TransactionID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		s.mu.Lock()
		s.cache = removeWhere(s.cache, func(t *Transaction) bool {
			return t.ID == plan.TransactionID
		})
		s.mu.Unlock()
		return nil

	case DeleteScopeGroup:
		if plan.GroupID == "" {
			return fmt.Errorf("%w: group delete plan without group id", ErrInvalidInput)
		}
		if err := s.repo.DeleteByGroupID(ctx, plan.GroupID); err != nil {
			return fmt.Errorf("failed to delete installment group: %w", err)
		}
		s.mu.Lock()
		s.cache = removeWhere(s.cache, func(t *Transaction) bool {
			gid, ok := t.GroupID()
			return ok && gid == plan.GroupID
		})
		s.mu.Unlock()
		return nil
	}

	return fmt.Errorf("%w: unknown delete scope %q", ErrInvalidInput, plan.Scope)
}

func removeWhere(ts []*Transaction, match func(*Transaction) bool) []*Transaction {
	out := ts[:0]
	for _, t := range ts {
		if !match(t) {
			out = append(out, t)
		}
	}
	return out
}
