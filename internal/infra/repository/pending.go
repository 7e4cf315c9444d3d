package repository

import (
	"context"
	"time"

	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PendingSpinRepository struct{}

func NewPendingSpinRepository() *PendingSpinRepository {
	return &PendingSpinRepository{}
}

// Upsert keeps at most one pending spin per session; a new spin before the
// old one is claimed overwrites it.
func (r *PendingSpinRepository) Upsert(ctx context.Context, tx db.DBTX, sessionID uuid.UUID, prize wheel.Prize, at time.Time) error {
	const q = `
		INSERT INTO pending_wheel_spins
			(id, session_id, segment_id, label, prize_type, discount_type, discount_value, gift_product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (session_id) DO UPDATE SET
			segment_id = EXCLUDED.segment_id,
			label = EXCLUDED.label,
			prize_type = EXCLUDED.prize_type,
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value,
			gift_product_id = EXCLUDED.gift_product_id,
			created_at = EXCLUDED.created_at`

	var giftID pgtype.UUID
	if productID, ok := prize.GiftProductID(); ok {
		giftID = pgconv.UUIDToPgtype(productID)
	}

	_, err := tx.Exec(ctx, q,
		uuid.New(),
		sessionID,
		prize.SegmentID(),
		prize.Label(),
		prize.Kind().String(),
		prize.DiscountKind().String(),
		prize.DiscountValue(),
		giftID,
		at,
	)
	if err != nil {
		return classifyWriteErr("failed to save pending spin", err)
	}
	return nil
}

func (r *PendingSpinRepository) FindBySessionForUpdate(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*shared.PendingSpinSnapshot, error) {
	const q = `
		SELECT id, session_id, segment_id, label, prize_type, discount_type, discount_value, gift_product_id, created_at
		FROM pending_wheel_spins
		WHERE session_id = $1
		FOR UPDATE`

	var (
		snap   shared.PendingSpinSnapshot
		giftID pgtype.UUID
	)
	err := tx.QueryRow(ctx, q, sessionID).Scan(
		&snap.ID,
		&snap.SessionID,
		&snap.SegmentID,
		&snap.Label,
		&snap.PrizeKind,
		&snap.DiscountKind,
		&snap.DiscountValue,
		&giftID,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, classifyWriteErr("failed to load pending spin", err)
	}
	snap.GiftProductID = pgconv.UUIDPtrFromPgtype(giftID)
	return &snap, nil
}

func (r *PendingSpinRepository) DeleteBySession(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM pending_wheel_spins WHERE session_id = $1`, sessionID)
	if err != nil {
		return classifyWriteErr("failed to delete pending spin", err)
	}
	return nil
}
