package readstore

import (
	"context"

	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SegmentReadStore struct {
	db db.DBTX
}

func NewSegmentReadStore(db db.DBTX) *SegmentReadStore {
	return &SegmentReadStore{db: db}
}

const segmentColumns = `id, label, discount_type, discount_value, color, weight, prize_type, gift_product_id, sort_order, is_active`

// ListActive returns the segments shown on the wheel, in display order.
func (s *SegmentReadStore) ListActive(ctx context.Context) ([]queries.SegmentView, error) {
	const q = `
		SELECT ` + segmentColumns + `
		FROM wheel_segments
		WHERE is_active = true
		ORDER BY sort_order, created_at`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active segments", err)
	}
	defer rows.Close()

	return scanSegmentViews(rows)
}

// ListAll returns every segment including inactive ones, for administration.
func (s *SegmentReadStore) ListAll(ctx context.Context) ([]queries.SegmentView, error) {
	const q = `
		SELECT ` + segmentColumns + `
		FROM wheel_segments
		ORDER BY sort_order, created_at`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list segments", err)
	}
	defer rows.Close()

	return scanSegmentViews(rows)
}

// ActiveSegments returns the active segments as domain entities for the
// selection path.
func (s *SegmentReadStore) ActiveSegments(ctx context.Context) ([]*wheel.Segment, error) {
	views, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	segments := make([]*wheel.Segment, 0, len(views))
	for _, v := range views {
		segments = append(segments, segmentFromView(v))
	}
	return segments, nil
}

func scanSegmentViews(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]queries.SegmentView, error) {
	var views []queries.SegmentView
	for rows.Next() {
		v, err := scanSegmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan wheel segment", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wheel segments", err)
	}
	return views, nil
}

func scanSegmentView(row interface{ Scan(dest ...any) error }) (queries.SegmentView, error) {
	var (
		v      queries.SegmentView
		giftID pgtype.UUID
	)
	err := row.Scan(
		&v.ID,
		&v.Label,
		&v.DiscountType,
		&v.DiscountValue,
		&v.Color,
		&v.Weight,
		&v.PrizeType,
		&giftID,
		&v.SortOrder,
		&v.IsActive,
	)
	if err != nil {
		return queries.SegmentView{}, err
	}
	v.GiftProductID = pgconv.UUIDPtrFromPgtype(giftID)
	return v, nil
}

func segmentFromView(v queries.SegmentView) *wheel.Segment {
	return wheel.ReconstructSegment(
		v.ID,
		v.Label,
		wheel.DiscountKind(v.DiscountType),
		v.DiscountValue,
		v.Color,
		v.Weight,
		wheel.PrizeKind(v.PrizeType),
		v.GiftProductID,
		v.SortOrder,
		v.IsActive,
	)
}
