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

type PendingSpinReadStore struct {
	db db.DBTX
}

func NewPendingSpinReadStore(db db.DBTX) *PendingSpinReadStore {
	return &PendingSpinReadStore{db: db}
}

// FindBySession returns the session's unclaimed spin without locking, or nil
// when nothing is pending.
func (s *PendingSpinReadStore) FindBySession(ctx context.Context, sessionID uuid.UUID) (*shared.PendingSpinSnapshot, error) {
	const q = `
		SELECT id, session_id, segment_id, label, prize_type, discount_type, discount_value, gift_product_id, created_at
		FROM pending_wheel_spins
		WHERE session_id = $1`

	var (
		snap   shared.PendingSpinSnapshot
		giftID pgtype.UUID
	)
	err := s.db.QueryRow(ctx, q, sessionID).Scan(
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
		return nil, infra.WrapRepoErr("failed to load pending spin", err)
	}
	snap.GiftProductID = pgconv.UUIDPtrFromPgtype(giftID)
	return &snap, nil
}
