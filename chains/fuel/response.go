package fuel

import (
	"context"
	"fmt"
	"time"
)

// TransactionFailedError is returned by WaitForResult when the transaction
// reached a final status other than success
type TransactionFailedError struct {
	ID     string
	Status StatusType
	Reason string
}

func (e *TransactionFailedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transaction %s ended with %s", e.ID, e.Status)
	}
	return fmt.Sprintf("transaction %s ended with %s: %s", e.ID, e.Status, e.Reason)
}

// TransactionResponse tracks a submitted transaction
type TransactionResponse struct {
	id           string
	node         Node
	pollInterval time.Duration
}

func (r *TransactionResponse) ID() string {
	return r.id
}

func (r *TransactionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID string `json:"id"`
	}{ID: r.id})
}

// WaitForResult blocks until the node reports a final status or ctx ends.
// A failed or squeezed out transaction returns its result together with a
// *TransactionFailedError.
func (r *TransactionResponse) WaitForResult(ctx context.Context) (*TransactionResult, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		tx, err := r.node.GetTransactionWithReceipts(ctx, r.id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch transaction status: %w", err)
		}

		if tx != nil && tx.Status != nil && tx.Status.Type.IsFinal() {
			result := newTransactionResult(tx)
			if result.ID == "" {
				result.ID = r.id
			}
			if tx.Status.Type != StatusSuccess {
				return result, &TransactionFailedError{
					ID:     result.ID,
					Status: tx.Status.Type,
					Reason: tx.Status.Reason,
				}
			}
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
