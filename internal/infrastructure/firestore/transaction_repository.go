package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"imovel/internal/domain/transaction"
)

const transactionsCollection = "transactions"

// TransactionRepository implements transaction.Repository on Firestore.
// Records are keyed by the transaction's own id; the id is stored both as
// the document key and as a field inside the document.
type TransactionRepository struct {
	client *Client
}

func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

func (r *TransactionRepository) collection() *firestore.CollectionRef {
	return r.client.fs.Collection(transactionsCollection)
}

func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	var out []*transaction.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}

		var t transaction.Transaction
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("failed to decode transaction %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &t)
	}

	return out, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	if _, err := r.collection().Doc(t.ID).Set(ctx, t); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch inserts all records in one Firestore write batch, which
// commits atomically: either every record exists afterward or none does.
func (r *TransactionRepository) CreateBatch(ctx context.Context, ts []*transaction.Transaction) error {
	if len(ts) == 0 {
		return nil
	}

	batch := r.client.fs.Batch()
	for _, t := range ts {
		batch.Set(r.collection().Doc(t.ID), t)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return nil
}

// Update is a full-record replace by id.
func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	if _, err := r.collection().Doc(t.ID).Set(ctx, t); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// DeleteByGroupID queries every record sharing the installment group and
// removes them in one atomic write batch.
func (r *TransactionRepository) DeleteByGroupID(ctx context.Context, groupID string) error {
	iter := r.collection().Where("installment.groupId", "==", groupID).Documents(ctx)
	defer iter.Stop()

	batch := r.client.fs.Batch()
	count := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query installment group %s: %w", groupID, err)
		}
		batch.Delete(doc.Ref)
		count++
	}

	if count == 0 {
		return nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to delete installment group %s: %w", groupID, err)
	}
	return nil
}
