package queries

import (
	"context"

	"github.com/google/uuid"
)

type CouponQueries interface {
	ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
}

type CouponReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
	}
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error) {
	return q.readStore.ListByUser(ctx, userID)
}
