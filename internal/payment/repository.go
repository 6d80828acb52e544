package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Ledger status values.
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Record is one payment confirmation keyed by the provider's payment key.
type Record struct {
	PaymentKey  string
	OrderID     string
	Amount      int64
	Status      string
	OrderNumber string
	Message     string
}

// Ledger makes a payment redirect confirm at most once.
type Ledger interface {
	// Claim reserves key for the caller. When another caller already holds
	// or finished it, claimed is false and the stored record is returned.
	Claim(ctx context.Context, key, orderID string, amount int64) (claimed bool, existing *Record, err error)
	// MarkSent notes that the backend confirm call is about to be made.
	MarkSent(ctx context.Context, key string) error
	Complete(ctx context.Context, key, status, orderNumber, message string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Ledger {
	return &repository{db: db}
}

func (r *repository) Claim(
	ctx context.Context,
	key string,
	orderID string,
	amount int64,
) (bool, *Record, error) {

	// A pending claim older than two minutes whose confirm call was never
	// sent belongs to a request that died early and may be taken over.
	const q = `
	INSERT INTO payment_confirmations (
		payment_key,
		order_id,
		amount,
		status
	)
	VALUES ($1, $2, $3, 'pending')
	ON CONFLICT (payment_key)
	DO UPDATE SET claimed_at = now()
	WHERE payment_confirmations.status = 'pending'
	  AND payment_confirmations.confirm_sent_at IS NULL
	  AND payment_confirmations.claimed_at < now() - interval '2 minutes'
	RETURNING id;
	`

	var id int64
	err := r.db.QueryRowContext(ctx, q, key, orderID, amount).Scan(&id)
	if err == nil {
		return true, nil, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, nil, err
	}

	rec, err := r.get(ctx, key)
	if err != nil {
		return false, nil, err
	}
	return false, rec, nil
}

func (r *repository) get(ctx context.Context, key string) (*Record, error) {
	const q = `
	SELECT payment_key, order_id, amount, status,
	       COALESCE(order_number, ''), COALESCE(message, '')
	FROM payment_confirmations
	WHERE payment_key = $1;
	`

	var rec Record
	err := r.db.QueryRowContext(ctx, q, key).Scan(
		&rec.PaymentKey, &rec.OrderID, &rec.Amount, &rec.Status,
		&rec.OrderNumber, &rec.Message,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) MarkSent(ctx context.Context, key string) error {
	const q = `
	UPDATE payment_confirmations
	SET confirm_sent_at = now()
	WHERE payment_key = $1 AND status = 'pending';
	`

	res, err := r.db.ExecContext(ctx, q, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("payment confirmation %q is not pending", key)
	}
	return nil
}

func (r *repository) Complete(
	ctx context.Context,
	key string,
	status string,
	orderNumber string,
	message string,
) error {

	const q = `
	UPDATE payment_confirmations
	SET status = $2,
	    order_number = NULLIF($3, ''),
	    message = NULLIF($4, ''),
	    completed_at = now()
	WHERE payment_key = $1;
	`

	_, err := r.db.ExecContext(ctx, q, key, status, orderNumber, message)
	return err
}
