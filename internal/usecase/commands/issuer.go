package commands

import (
	"context"
	"log/slog"
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/errs"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPrizeGrantFailed = errs.New("prize grant failed")

const codeRetryLimit = 3

type grantResult struct {
	CouponID uuid.UUID
	Code     string
	SpinID   uuid.UUID
}

// grantPrize turns a won prize into a coupon and a permanent spin record, both
// inside the caller's transaction. If either write fails the caller's rollback
// leaves no partial grant behind.
func grantPrize(ctx context.Context, tx shared.Tx, userID uuid.UUID, prize wheel.Prize, now time.Time, cfg config.WheelConfig) (*grantResult, error) {
	gift := resolveGift(ctx, tx, prize)

	issued, err := createWithFreshCode(ctx, tx, userID, prize, gift, now, cfg)
	if err != nil {
		return nil, err
	}

	spinID, err := tx.Spins().Create(ctx, tx.DB(), userID, prize.SegmentID(), issued.ID(), now)
	if err != nil {
		return nil, errs.Mark(err, ErrPrizeGrantFailed)
	}

	return &grantResult{
		CouponID: issued.ID(),
		Code:     issued.Code().String(),
		SpinID:   spinID,
	}, nil
}

// resolveGift freezes the product display data onto the coupon. A failed
// lookup degrades to an ID-only gift rather than blocking the grant; the
// product reference is what matters for fulfillment.
func resolveGift(ctx context.Context, tx shared.Tx, prize wheel.Prize) *coupon.GiftInfo {
	productID, ok := prize.GiftProductID()
	if !ok {
		return nil
	}

	product, err := tx.Reads().ProductByID(ctx, productID)
	if err != nil {
		slog.Warn("gift product lookup failed, issuing with product reference only",
			"product_id", productID.String(),
			"error", err.Error())
		return &coupon.GiftInfo{ProductID: productID}
	}

	return &coupon.GiftInfo{
		ProductID: product.ID,
		Name:      &product.Name,
		ImageURL:  product.ImageURL,
	}
}

// createWithFreshCode retries on the unique-code index. Collisions over a
// 36^6 space are rare enough that exhausting the retries indicates a real
// failure.
func createWithFreshCode(ctx context.Context, tx shared.Tx, userID uuid.UUID, prize wheel.Prize, gift *coupon.GiftInfo, now time.Time, cfg config.WheelConfig) (*coupon.UserCoupon, error) {
	var lastErr error
	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		code, err := coupon.GenerateCode(cfg.CouponPrefix)
		if err != nil {
			return nil, errs.Mark(err, ErrPrizeGrantFailed)
		}

		issued := coupon.Issue(userID, prize, code, gift, now, cfg.CouponTTL())
		if err := tx.Coupons().Create(ctx, tx.DB(), issued); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				lastErr = err
				continue
			}
			return nil, errs.Mark(err, ErrPrizeGrantFailed)
		}
		return issued, nil
	}
	return nil, errs.Mark(lastErr, ErrPrizeGrantFailed)
}

// prizeFromPending rebuilds the domain prize from a persisted anonymous spin.
func prizeFromPending(snap *shared.PendingSpinSnapshot) (wheel.Prize, error) {
	discountKind, err := wheel.NewDiscountKind(snap.DiscountKind)
	if err != nil {
		return wheel.Prize{}, err
	}
	prizeKind, err := wheel.NewPrizeKind(snap.PrizeKind)
	if err != nil {
		return wheel.Prize{}, err
	}

	if prizeKind == wheel.PrizeGift && snap.GiftProductID != nil {
		return wheel.NewGiftPrize(snap.SegmentID, snap.Label, discountKind, snap.DiscountValue, *snap.GiftProductID)
	}
	return wheel.NewDiscountPrize(snap.SegmentID, snap.Label, discountKind, snap.DiscountValue)
}
