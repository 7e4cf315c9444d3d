package coupon

import (
	"errors"
	"time"

	"wheel-promo-api/internal/domain/wheel"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponAlreadyUsed = errors.New("coupon already used")
)

// GiftInfo is the product display data captured at issuance. It is frozen on
// the coupon so later catalog edits or deletions never corrupt what the
// customer actually won.
type GiftInfo struct {
	ProductID uuid.UUID
	Name      *string
	ImageURL  *string
}

// UserCoupon is the redeemable artifact a wheel prize turns into. It is
// created once, flipped to used exactly once at redemption, and never
// deleted.
type UserCoupon struct {
	id            uuid.UUID
	userID        uuid.UUID
	code          Code
	discountKind  wheel.DiscountKind
	discountValue int32
	prizeKind     wheel.PrizeKind
	gift          *GiftInfo
	used          bool
	usedAt        *time.Time
	orderID       *uuid.UUID
	expiresAt     time.Time
	createdAt     time.Time
}

// Issue mints a new unused coupon from a won prize.
func Issue(userID uuid.UUID, prize wheel.Prize, code Code, gift *GiftInfo, issuedAt time.Time, ttl time.Duration) *UserCoupon {
	return &UserCoupon{
		id:            uuid.New(),
		userID:        userID,
		code:          code,
		discountKind:  prize.DiscountKind(),
		discountValue: prize.DiscountValue(),
		prizeKind:     prize.Kind(),
		gift:          gift,
		used:          false,
		expiresAt:     issuedAt.Add(ttl),
		createdAt:     issuedAt,
	}
}

// Reconstruct rebuilds a coupon from persisted state.
func Reconstruct(
	id, userID uuid.UUID,
	code Code,
	discountKind wheel.DiscountKind,
	discountValue int32,
	prizeKind wheel.PrizeKind,
	gift *GiftInfo,
	used bool,
	usedAt *time.Time,
	orderID *uuid.UUID,
	expiresAt, createdAt time.Time,
) *UserCoupon {
	return &UserCoupon{
		id:            id,
		userID:        userID,
		code:          code,
		discountKind:  discountKind,
		discountValue: discountValue,
		prizeKind:     prizeKind,
		gift:          gift,
		used:          used,
		usedAt:        usedAt,
		orderID:       orderID,
		expiresAt:     expiresAt,
		createdAt:     createdAt,
	}
}

// IsExpiredAt reports expiry. The boundary is exclusive on the usable side:
// a coupon whose expiry equals "now" is already unusable.
func (c *UserCoupon) IsExpiredAt(t time.Time) bool {
	return !t.Before(c.expiresAt)
}

func (c *UserCoupon) IsUsableAt(t time.Time) bool {
	return !c.used && !c.IsExpiredAt(t)
}

// Redeem marks the coupon consumed by an order. The used flag is monotonic;
// a second redemption attempt fails regardless of timing.
func (c *UserCoupon) Redeem(orderID uuid.UUID, at time.Time) error {
	if c.used {
		return ErrCouponAlreadyUsed
	}
	if c.IsExpiredAt(at) {
		return ErrCouponExpired
	}
	c.used = true
	c.usedAt = &at
	c.orderID = &orderID
	return nil
}

func (c *UserCoupon) ID() uuid.UUID                    { return c.id }
func (c *UserCoupon) UserID() uuid.UUID                { return c.userID }
func (c *UserCoupon) Code() Code                       { return c.code }
func (c *UserCoupon) DiscountKind() wheel.DiscountKind { return c.discountKind }
func (c *UserCoupon) DiscountValue() int32             { return c.discountValue }
func (c *UserCoupon) PrizeKind() wheel.PrizeKind       { return c.prizeKind }
func (c *UserCoupon) Gift() *GiftInfo                  { return c.gift }
func (c *UserCoupon) IsUsed() bool                     { return c.used }
func (c *UserCoupon) UsedAt() *time.Time               { return c.usedAt }
func (c *UserCoupon) OrderID() *uuid.UUID              { return c.orderID }
func (c *UserCoupon) ExpiresAt() time.Time             { return c.expiresAt }
func (c *UserCoupon) CreatedAt() time.Time             { return c.createdAt }
