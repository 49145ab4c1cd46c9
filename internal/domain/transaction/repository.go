package transaction

import (
	"context"
)

// Repository is the persistence gateway for transactions. Implementations
// must key records by the transaction's own id and guarantee that the batch
// operations apply all-or-nothing.
type Repository interface {
	List(ctx context.Context) ([]*Transaction, error)
	Create(ctx context.Context, t *Transaction) error
	// CreateBatch inserts all records in one atomic write. Either every
	// record exists afterward or none is committed.
	CreateBatch(ctx context.Context, ts []*Transaction) error
	// Update replaces the full record identified by t.ID.
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id string) error
	// DeleteByGroupID removes every record whose installment group matches,
	// resolved by query-then-batch-delete.
	DeleteByGroupID(ctx context.Context, groupID string) error
}
