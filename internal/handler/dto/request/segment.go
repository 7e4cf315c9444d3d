package request

import (
	"wheel-promo-api/internal/domain/wheel"

	"github.com/google/uuid"
)

type CreateSegmentRequest struct {
	Label         string     `json:"label" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int32      `json:"discount_value" binding:"min=0"`
	Color         string     `json:"color" binding:"required"`
	Weight        float64    `json:"weight" binding:"min=0"`
	PrizeType     string     `json:"prize_type" binding:"required,oneof=discount gift"`
	GiftProductID *uuid.UUID `json:"gift_product_id,omitempty"`
	SortOrder     int32      `json:"sort_order"`
}

func (r CreateSegmentRequest) ToDomain() (*wheel.Segment, error) {
	discountKind, err := wheel.NewDiscountKind(r.DiscountType)
	if err != nil {
		return nil, err
	}
	prizeKind, err := wheel.NewPrizeKind(r.PrizeType)
	if err != nil {
		return nil, err
	}
	return wheel.NewSegment(
		r.Label,
		discountKind,
		r.DiscountValue,
		r.Color,
		r.Weight,
		prizeKind,
		r.GiftProductID,
		r.SortOrder,
	)
}

type UpdateSegmentRequest struct {
	Label         string     `json:"label" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int32      `json:"discount_value" binding:"min=0"`
	Color         string     `json:"color" binding:"required"`
	Weight        float64    `json:"weight" binding:"min=0"`
	PrizeType     string     `json:"prize_type" binding:"required,oneof=discount gift"`
	GiftProductID *uuid.UUID `json:"gift_product_id,omitempty"`
	SortOrder     int32      `json:"sort_order"`
	IsActive      bool       `json:"is_active"`
}

// ToDomain validates through the creation path, then rebinds the segment to
// its existing identity and activation flag.
func (r UpdateSegmentRequest) ToDomain(id uuid.UUID) (*wheel.Segment, error) {
	discountKind, err := wheel.NewDiscountKind(r.DiscountType)
	if err != nil {
		return nil, err
	}
	prizeKind, err := wheel.NewPrizeKind(r.PrizeType)
	if err != nil {
		return nil, err
	}
	validated, err := wheel.NewSegment(
		r.Label,
		discountKind,
		r.DiscountValue,
		r.Color,
		r.Weight,
		prizeKind,
		r.GiftProductID,
		r.SortOrder,
	)
	if err != nil {
		return nil, err
	}
	return wheel.ReconstructSegment(
		id,
		validated.Label(),
		validated.DiscountKind(),
		validated.DiscountValue(),
		validated.Color(),
		validated.Weight(),
		validated.PrizeKind(),
		validated.GiftProductID(),
		validated.SortOrder(),
		r.IsActive,
	), nil
}
