package repository

import (
	"context"
	"time"

	"wheel-promo-api/internal/infra/db"

	"github.com/google/uuid"
)

type SpinRepository struct{}

func NewSpinRepository() *SpinRepository {
	return &SpinRepository{}
}

func (r *SpinRepository) Create(ctx context.Context, tx db.DBTX, userID, segmentID, couponID uuid.UUID, spunAt time.Time) (uuid.UUID, error) {
	const q = `
		INSERT INTO user_wheel_spins (id, user_id, segment_id, coupon_id, spun_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, uuid.New(), userID, segmentID, couponID, spunAt).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to record wheel spin", err)
	}
	return id, nil
}
