package response

import (
	"time"

	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SegmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	Label         string     `json:"label"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int32      `json:"discountValue"`
	Color         string     `json:"color"`
	Weight        float64    `json:"weight"`
	PrizeType     string     `json:"prizeType"`
	GiftProductID *uuid.UUID `json:"giftProductId,omitempty"`
	SortOrder     int32      `json:"sortOrder"`
	IsActive      bool       `json:"isActive"`
}

func FromSegmentView(v queries.SegmentView) SegmentResponse {
	return SegmentResponse{
		ID:            v.ID,
		Label:         v.Label,
		DiscountType:  v.DiscountType,
		DiscountValue: v.DiscountValue,
		Color:         v.Color,
		Weight:        v.Weight,
		PrizeType:     v.PrizeType,
		GiftProductID: v.GiftProductID,
		SortOrder:     v.SortOrder,
		IsActive:      v.IsActive,
	}
}

func FromSegmentViews(views []queries.SegmentView) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSegmentView(v))
	}
	return out
}

type EligibilityResponse struct {
	CanSpin        bool       `json:"canSpin"`
	NextEligibleAt *time.Time `json:"nextEligibleAt,omitempty"`
}

type PrizeResponse struct {
	SegmentID     uuid.UUID  `json:"segmentId"`
	Label         string     `json:"label"`
	PrizeType     string     `json:"prizeType"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int32      `json:"discountValue"`
	GiftProductID *uuid.UUID `json:"giftProductId,omitempty"`
}

func fromPrizeView(v queries.PrizeView) PrizeResponse {
	return PrizeResponse{
		SegmentID:     v.SegmentID,
		Label:         v.Label,
		PrizeType:     v.PrizeType,
		DiscountType:  v.DiscountType,
		DiscountValue: v.DiscountValue,
		GiftProductID: v.GiftProductID,
	}
}

type SpinResponse struct {
	Prize      PrizeResponse `json:"prize"`
	Rotation   float64       `json:"rotation"`
	CouponID   *uuid.UUID    `json:"couponId,omitempty"`
	CouponCode *string       `json:"couponCode,omitempty"`
	Pending    bool          `json:"pending"`
}

func FromSpinResult(r *commands.SpinResult) SpinResponse {
	return SpinResponse{
		Prize:      fromPrizeView(r.Prize),
		Rotation:   r.Rotation,
		CouponID:   r.CouponID,
		CouponCode: r.CouponCode,
		Pending:    r.Pending,
	}
}

type PendingSpinResponse struct {
	HasPending bool           `json:"hasPending"`
	Prize      *PrizeResponse `json:"prize,omitempty"`
}

func FromPendingPrize(v *queries.PrizeView) PendingSpinResponse {
	if v == nil {
		return PendingSpinResponse{}
	}
	prize := fromPrizeView(*v)
	return PendingSpinResponse{HasPending: true, Prize: &prize}
}

type FlowResponse struct {
	State  string         `json:"state"`
	Result *PrizeResponse `json:"result,omitempty"`
}

func FromFlowView(v *queries.FlowView) FlowResponse {
	resp := FlowResponse{State: v.State}
	if v.Result != nil {
		prize := fromPrizeView(*v.Result)
		resp.Result = &prize
	}
	return resp
}

type ClaimResponse struct {
	Prize      PrizeResponse `json:"prize"`
	CouponID   uuid.UUID     `json:"couponId"`
	CouponCode string        `json:"couponCode"`
}

func FromClaimResult(r *commands.ClaimResult) ClaimResponse {
	return ClaimResponse{
		Prize:      fromPrizeView(r.Prize),
		CouponID:   r.CouponID,
		CouponCode: r.CouponCode,
	}
}
