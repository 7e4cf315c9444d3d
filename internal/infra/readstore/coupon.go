package readstore

import (
	"context"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/pkg/pgconv"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

const couponColumns = `id, code, discount_type, discount_value, prize_type,
	gift_product_id, gift_product_name, gift_product_image,
	is_used, used_at, order_id, expires_at, created_at`

// ListByUser returns the user's coupons, newest first.
func (s *CouponReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.CouponView, error) {
	const q = `
		SELECT ` + couponColumns + `
		FROM user_coupons
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []queries.CouponView
	for rows.Next() {
		v, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupons", err)
	}
	return views, nil
}

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	const q = `
		SELECT ` + couponColumns + `
		FROM user_coupons
		WHERE id = $1`

	v, err := scanCouponView(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load coupon", err)
	}
	return &v, nil
}

func scanCouponView(row interface{ Scan(dest ...any) error }) (queries.CouponView, error) {
	var (
		v         queries.CouponView
		giftID    pgtype.UUID
		giftName  pgtype.Text
		giftImage pgtype.Text
		usedAt    pgtype.Timestamptz
		orderID   pgtype.UUID
	)
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.DiscountType,
		&v.DiscountValue,
		&v.PrizeType,
		&giftID,
		&giftName,
		&giftImage,
		&v.IsUsed,
		&usedAt,
		&orderID,
		&v.ExpiresAt,
		&v.CreatedAt,
	)
	if err != nil {
		return queries.CouponView{}, err
	}
	v.GiftProductID = pgconv.UUIDPtrFromPgtype(giftID)
	v.GiftName = pgconv.StringPtrFromPgtype(giftName)
	v.GiftImage = pgconv.StringPtrFromPgtype(giftImage)
	v.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	v.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	return v, nil
}
