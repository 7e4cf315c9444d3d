package response

import (
	"time"

	"wheel-promo-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int32      `json:"discountValue"`
	PrizeType     string     `json:"prizeType"`
	GiftProductID *uuid.UUID `json:"giftProductId,omitempty"`
	GiftName      *string    `json:"giftProductName,omitempty"`
	GiftImage     *string    `json:"giftProductImage,omitempty"`
	IsUsed        bool       `json:"isUsed"`
	UsedAt        *time.Time `json:"usedAt,omitempty"`
	OrderID       *uuid.UUID `json:"orderId,omitempty"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromCouponView(v queries.CouponView) CouponResponse {
	return CouponResponse{
		ID:            v.ID,
		Code:          v.Code,
		DiscountType:  v.DiscountType,
		DiscountValue: v.DiscountValue,
		PrizeType:     v.PrizeType,
		GiftProductID: v.GiftProductID,
		GiftName:      v.GiftName,
		GiftImage:     v.GiftImage,
		IsUsed:        v.IsUsed,
		UsedAt:        v.UsedAt,
		OrderID:       v.OrderID,
		ExpiresAt:     v.ExpiresAt,
		CreatedAt:     v.CreatedAt,
	}
}

func FromCouponViews(views []queries.CouponView) []CouponResponse {
	out := make([]CouponResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCouponView(v))
	}
	return out
}

type RedeemResponse struct {
	CouponID uuid.UUID `json:"couponId"`
	OrderID  uuid.UUID `json:"orderId"`
}
