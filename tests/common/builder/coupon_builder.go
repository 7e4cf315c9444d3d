//go:build unit || e2e

package builder

import (
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	UserID        uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue int32
	PrizeType     string
	GiftProductID *uuid.UUID
	GiftName      *string
	IsUsed        bool
	UsedAt        *time.Time
	OrderID       *uuid.UUID
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		UserID:        uuid.New(),
		Code:          "WHEEL-A1B2C3",
		DiscountType:  string(wheel.DiscountPercentage),
		DiscountValue: 10,
		PrizeType:     string(wheel.PrizeDiscount),
		IsUsed:        false,
		ExpiresAt:     now.Add(30 * 24 * time.Hour),
		CreatedAt:     now,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CouponBuilder) BuildDomain() *coupon.UserCoupon {
	var gift *coupon.GiftInfo
	if c.GiftProductID != nil {
		gift = &coupon.GiftInfo{ProductID: *c.GiftProductID, Name: c.GiftName}
	}
	return coupon.Reconstruct(
		uuid.New(),
		c.UserID,
		coupon.Code(c.Code),
		wheel.DiscountKind(c.DiscountType),
		c.DiscountValue,
		wheel.PrizeKind(c.PrizeType),
		gift,
		c.IsUsed,
		c.UsedAt,
		c.OrderID,
		c.ExpiresAt,
		c.CreatedAt,
	)
}

func (c *CouponBuilder) BuildView() queries.CouponView {
	return queries.CouponView{
		ID:            uuid.New(),
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		PrizeType:     c.PrizeType,
		GiftProductID: c.GiftProductID,
		GiftName:      c.GiftName,
		IsUsed:        c.IsUsed,
		UsedAt:        c.UsedAt,
		OrderID:       c.OrderID,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}

func (c *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:            uuid.New(),
		UserID:        c.UserID,
		Code:          c.Code,
		DiscountKind:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		PrizeKind:     c.PrizeType,
		GiftProductID: c.GiftProductID,
		GiftName:      c.GiftName,
		IsUsed:        c.IsUsed,
		UsedAt:        c.UsedAt,
		OrderID:       c.OrderID,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}

// Fluent builder methods
func (c *CouponBuilder) WithUserID(userID uuid.UUID) *CouponBuilder {
	c.UserID = userID
	return c
}

func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) WithExpiresAt(t time.Time) *CouponBuilder {
	c.ExpiresAt = t
	return c
}

func (c *CouponBuilder) AsUsed() *CouponBuilder {
	usedAt := time.Now()
	orderID := uuid.New()
	c.IsUsed = true
	c.UsedAt = &usedAt
	c.OrderID = &orderID
	return c
}

func (c *CouponBuilder) AsExpired() *CouponBuilder {
	c.ExpiresAt = time.Now().Add(-time.Hour)
	return c
}

func (c *CouponBuilder) AsGift(productID uuid.UUID, name string) *CouponBuilder {
	c.PrizeType = string(wheel.PrizeGift)
	c.GiftProductID = &productID
	c.GiftName = &name
	return c
}
