package readstore

import (
	"context"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpinReadStore struct {
	db db.DBTX
}

func NewSpinReadStore(db db.DBTX) *SpinReadStore {
	return &SpinReadStore{db: db}
}

// LatestSpinByUser returns the user's most recent recorded spin, or nil when
// the user has never spun.
func (s *SpinReadStore) LatestSpinByUser(ctx context.Context, userID uuid.UUID) (*shared.SpinSnapshot, error) {
	const q = `
		SELECT id, user_id, segment_id, coupon_id, spun_at
		FROM user_wheel_spins
		WHERE user_id = $1
		ORDER BY spun_at DESC
		LIMIT 1`

	var snap shared.SpinSnapshot
	err := s.db.QueryRow(ctx, q, userID).Scan(
		&snap.ID,
		&snap.UserID,
		&snap.SegmentID,
		&snap.CouponID,
		&snap.SpunAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load latest spin", err)
	}
	return &snap, nil
}
