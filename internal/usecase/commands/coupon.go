package commands

import (
	"context"
	"errors"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/errs"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrCouponAlreadyUsed = errs.New("coupon already used")
	ErrCouponExpired     = errs.New("coupon expired")
)

type RedeemResult struct {
	CouponID uuid.UUID
	OrderID  uuid.UUID
}

type CouponCommands interface {
	// Redeem consumes the coupon for an order. The used flag is monotonic;
	// concurrent redemptions are serialized by a row lock and at most one
	// succeeds.
	Redeem(ctx context.Context, userID uuid.UUID, code string, orderID uuid.UUID) (*RedeemResult, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *couponCommandsImpl) Redeem(ctx context.Context, userID uuid.UUID, code string, orderID uuid.UUID) (*RedeemResult, error) {
	if !coupon.Code(code).IsWellFormed() {
		return nil, ErrCouponNotFound
	}

	var result *RedeemResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().FindByCodeForUpdate(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return err
		}
		// Not-found for foreign coupons, so codes cannot be probed.
		if snap.UserID != userID {
			return ErrCouponNotFound
		}

		entity, err := couponFromSnapshot(snap)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := entity.Redeem(orderID, now); err != nil {
			switch {
			case errors.Is(err, coupon.ErrCouponAlreadyUsed):
				return ErrCouponAlreadyUsed
			case errors.Is(err, coupon.ErrCouponExpired):
				return ErrCouponExpired
			default:
				return err
			}
		}

		if err := tx.Coupons().MarkUsed(ctx, tx.DB(), snap.ID, orderID, now); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrCouponAlreadyUsed
			}
			return err
		}

		result = &RedeemResult{CouponID: snap.ID, OrderID: orderID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func couponFromSnapshot(snap *shared.CouponSnapshot) (*coupon.UserCoupon, error) {
	discountKind, err := wheel.NewDiscountKind(snap.DiscountKind)
	if err != nil {
		return nil, err
	}
	prizeKind, err := wheel.NewPrizeKind(snap.PrizeKind)
	if err != nil {
		return nil, err
	}

	var gift *coupon.GiftInfo
	if snap.GiftProductID != nil {
		gift = &coupon.GiftInfo{
			ProductID: *snap.GiftProductID,
			Name:      snap.GiftName,
			ImageURL:  snap.GiftImage,
		}
	}

	return coupon.Reconstruct(
		snap.ID,
		snap.UserID,
		coupon.Code(snap.Code),
		discountKind,
		snap.DiscountValue,
		prizeKind,
		gift,
		snap.IsUsed,
		snap.UsedAt,
		snap.OrderID,
		snap.ExpiresAt,
		snap.CreatedAt,
	), nil
}
