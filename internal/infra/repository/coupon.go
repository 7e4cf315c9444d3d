package repository

import (
	"context"
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.UserCoupon) error {
	const q = `
		INSERT INTO user_coupons
			(id, user_id, code, discount_type, discount_value, prize_type,
			 gift_product_id, gift_product_name, gift_product_image,
			 is_used, used_at, order_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var (
		giftID    pgtype.UUID
		giftName  pgtype.Text
		giftImage pgtype.Text
	)
	if gift := c.Gift(); gift != nil {
		giftID = pgconv.UUIDToPgtype(gift.ProductID)
		giftName = pgconv.StringPtrToPgtype(gift.Name)
		giftImage = pgconv.StringPtrToPgtype(gift.ImageURL)
	}

	_, err := tx.Exec(ctx, q,
		c.ID(),
		c.UserID(),
		c.Code().String(),
		c.DiscountKind().String(),
		c.DiscountValue(),
		c.PrizeKind().String(),
		giftID,
		giftName,
		giftImage,
		c.IsUsed(),
		pgconv.TimePtrToPgtype(c.UsedAt()),
		pgconv.UUIDPtrToPgtype(c.OrderID()),
		c.ExpiresAt(),
		c.CreatedAt(),
	)
	if err != nil {
		return classifyWriteErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*shared.CouponSnapshot, error) {
	const q = `
		SELECT id, user_id, code, discount_type, discount_value, prize_type,
		       gift_product_id, gift_product_name, gift_product_image,
		       is_used, used_at, order_id, expires_at, created_at
		FROM user_coupons
		WHERE code = $1
		FOR UPDATE`

	row := tx.QueryRow(ctx, q, code)
	snap, err := scanCouponSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, classifyWriteErr("failed to load coupon by code", err)
	}
	return snap, nil
}

// MarkUsed flips the used flag once. The is_used guard in the predicate keeps
// the flag monotonic even if two redemptions race past the row lock.
func (r *CouponRepository) MarkUsed(ctx context.Context, tx db.DBTX, id, orderID uuid.UUID, usedAt time.Time) error {
	const q = `
		UPDATE user_coupons
		SET is_used = true, used_at = $2, order_id = $3
		WHERE id = $1 AND is_used = false`

	tag, err := tx.Exec(ctx, q, id, usedAt, orderID)
	if err != nil {
		return classifyWriteErr("failed to mark coupon used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon already used", nil, infra.KindDuplicateKey)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponSnapshot(row rowScanner) (*shared.CouponSnapshot, error) {
	var (
		snap      shared.CouponSnapshot
		giftID    pgtype.UUID
		giftName  pgtype.Text
		giftImage pgtype.Text
		usedAt    pgtype.Timestamptz
		orderID   pgtype.UUID
	)
	err := row.Scan(
		&snap.ID,
		&snap.UserID,
		&snap.Code,
		&snap.DiscountKind,
		&snap.DiscountValue,
		&snap.PrizeKind,
		&giftID,
		&giftName,
		&giftImage,
		&snap.IsUsed,
		&usedAt,
		&orderID,
		&snap.ExpiresAt,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.GiftProductID = pgconv.UUIDPtrFromPgtype(giftID)
	snap.GiftName = pgconv.StringPtrFromPgtype(giftName)
	snap.GiftImage = pgconv.StringPtrFromPgtype(giftImage)
	snap.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	snap.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	return &snap, nil
}
