package repository

import (
	"context"

	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SegmentRepository struct{}

func NewSegmentRepository() *SegmentRepository {
	return &SegmentRepository{}
}

func (r *SegmentRepository) Create(ctx context.Context, tx db.DBTX, seg *wheel.Segment) (uuid.UUID, error) {
	const q = `
		INSERT INTO wheel_segments
			(id, label, discount_type, discount_value, color, weight, prize_type, gift_product_id, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		seg.ID(),
		seg.Label(),
		seg.DiscountKind().String(),
		seg.DiscountValue(),
		seg.Color(),
		seg.Weight(),
		seg.PrizeKind().String(),
		pgconv.UUIDPtrToPgtype(seg.GiftProductID()),
		seg.SortOrder(),
		seg.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create wheel segment", err)
	}
	return id, nil
}

func (r *SegmentRepository) Update(ctx context.Context, tx db.DBTX, seg *wheel.Segment) error {
	const q = `
		UPDATE wheel_segments
		SET label = $2, discount_type = $3, discount_value = $4, color = $5,
		    weight = $6, prize_type = $7, gift_product_id = $8, sort_order = $9,
		    is_active = $10, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q,
		seg.ID(),
		seg.Label(),
		seg.DiscountKind().String(),
		seg.DiscountValue(),
		seg.Color(),
		seg.Weight(),
		seg.PrizeKind().String(),
		pgconv.UUIDPtrToPgtype(seg.GiftProductID()),
		seg.SortOrder(),
		seg.IsActive(),
	)
	if err != nil {
		return classifyWriteErr("failed to update wheel segment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wheel segment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SegmentRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM wheel_segments WHERE id = $1`, id)
	if err != nil {
		return classifyWriteErr("failed to delete wheel segment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wheel segment not found", nil, infra.KindNotFound)
	}
	return nil
}
