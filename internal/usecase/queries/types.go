package queries

import (
	"time"

	"github.com/google/uuid"
)

// SegmentView represents read-optimized wheel segment data
type SegmentView struct {
	ID            uuid.UUID  `json:"id"`
	Label         string     `json:"label"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int32      `json:"discount_value"`
	Color         string     `json:"color"`
	Weight        float64    `json:"weight"`
	PrizeType     string     `json:"prize_type"`
	GiftProductID *uuid.UUID `json:"gift_product_id,omitempty"`
	SortOrder     int32      `json:"sort_order"`
	IsActive      bool       `json:"is_active"`
}

// EligibilityView is the gate's answer for the current identity
type EligibilityView struct {
	CanSpin        bool       `json:"can_spin"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}

// PrizeView represents a won prize as shown to the client
type PrizeView struct {
	SegmentID     uuid.UUID  `json:"segment_id"`
	Label         string     `json:"label"`
	PrizeType     string     `json:"prize_type"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int32      `json:"discount_value"`
	GiftProductID *uuid.UUID `json:"gift_product_id,omitempty"`
}

// FlowView reports the dialog state machine for one wheel session
type FlowView struct {
	State  string     `json:"state"`
	Result *PrizeView `json:"result,omitempty"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int32      `json:"discount_value"`
	PrizeType     string     `json:"prize_type"`
	GiftProductID *uuid.UUID `json:"gift_product_id,omitempty"`
	GiftName      *string    `json:"gift_product_name,omitempty"`
	GiftImage     *string    `json:"gift_product_image,omitempty"`
	IsUsed        bool       `json:"is_used"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	ExpiresAt     time.Time  `json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
