package readstore

import (
	"context"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db}
}

// IdempotencyByKey returns the stored record for a replayed request, or nil
// when the key has not been seen.
func (s *IdempotencyReadStore) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const q = `
		SELECT key, user_id, status, request_hash, result_coupon_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var (
		rec      shared.IdempotencyRecord
		couponID pgtype.UUID
	)
	err := s.db.QueryRow(ctx, q, key, userID).Scan(
		&rec.Key,
		&rec.UserID,
		&rec.Status,
		&rec.RequestHash,
		&couponID,
		&rec.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load idempotency key", err)
	}
	rec.ResultCouponID = pgconv.UUIDPtrFromPgtype(couponID)
	return &rec, nil
}
