package repository

import (
	"context"
	"time"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key for this request; a concurrent or earlier request
// holding the same key wins the conflict and this insert is a no-op.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const q = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := tx.Exec(ctx, q, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, classifyWriteErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx db.DBTX, key, userID, resultCouponID uuid.UUID) error {
	const q = `
		UPDATE idempotency_keys
		SET status = 'completed', result_coupon_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, q, key, userID, resultCouponID)
	if err != nil {
		return classifyWriteErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
