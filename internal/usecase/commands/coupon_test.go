//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/shared"
	"wheel-promo-api/tests/common/builder"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCouponCommands(store *fakeStore, clk clock.Clock) commands.CouponCommands {
	return commands.NewCouponCommands(&fakeUoW{store: store}, clk)
}

func seedCoupon(store *fakeStore, b *builder.CouponBuilder) *shared.CouponSnapshot {
	snap := b.BuildSnapshot()
	store.coupons[snap.ID] = snap
	return snap
}

func TestRedeem(t *testing.T) {
	orderID := uuid.New()

	t.Run("success consumes the coupon for the order", func(t *testing.T) {
		store := newFakeStore()
		userID := uuid.New()
		snap := seedCoupon(store, builder.NewCouponBuilder().WithUserID(userID))

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		result, err := c.Redeem(context.Background(), userID, snap.Code, orderID)
		require.NoError(t, err)

		assert.Equal(t, snap.ID, result.CouponID)
		assert.Equal(t, orderID, result.OrderID)
		assert.True(t, snap.IsUsed)
		require.NotNil(t, snap.UsedAt)
		assert.Equal(t, testNow, *snap.UsedAt)
		require.NotNil(t, snap.OrderID)
		assert.Equal(t, orderID, *snap.OrderID)
	})

	t.Run("malformed code is reported as not found", func(t *testing.T) {
		store := newFakeStore()
		c := newCouponCommands(store, clock.NewMockClock(testNow))

		_, err := c.Redeem(context.Background(), uuid.New(), "not a code", orderID)
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := newFakeStore()
		c := newCouponCommands(store, clock.NewMockClock(testNow))

		_, err := c.Redeem(context.Background(), uuid.New(), "WHEEL-ZZZZZZ", orderID)
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("someone else's coupon is indistinguishable from a missing one", func(t *testing.T) {
		store := newFakeStore()
		snap := seedCoupon(store, builder.NewCouponBuilder())

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		_, err := c.Redeem(context.Background(), uuid.New(), snap.Code, orderID)
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
		assert.False(t, snap.IsUsed)
	})

	t.Run("already used coupon", func(t *testing.T) {
		store := newFakeStore()
		userID := uuid.New()
		snap := seedCoupon(store, builder.NewCouponBuilder().WithUserID(userID).AsUsed())

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		_, err := c.Redeem(context.Background(), userID, snap.Code, orderID)
		require.ErrorIs(t, err, commands.ErrCouponAlreadyUsed)
	})

	t.Run("expired coupon", func(t *testing.T) {
		store := newFakeStore()
		userID := uuid.New()
		snap := seedCoupon(store, builder.NewCouponBuilder().WithUserID(userID).WithExpiresAt(testNow.Add(-time.Hour)))

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		_, err := c.Redeem(context.Background(), userID, snap.Code, orderID)
		require.ErrorIs(t, err, commands.ErrCouponExpired)
		assert.False(t, snap.IsUsed)
	})

	t.Run("coupon expiring exactly now is already expired", func(t *testing.T) {
		store := newFakeStore()
		userID := uuid.New()
		snap := seedCoupon(store, builder.NewCouponBuilder().WithUserID(userID).WithExpiresAt(testNow))

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		_, err := c.Redeem(context.Background(), userID, snap.Code, orderID)
		require.ErrorIs(t, err, commands.ErrCouponExpired)
	})

	t.Run("race loser on the used index is reported as already used", func(t *testing.T) {
		store := newFakeStore()
		userID := uuid.New()
		snap := seedCoupon(store, builder.NewCouponBuilder().WithUserID(userID))
		store.markUsedErr = infra.WrapRepoErr("coupon already redeemed", errors.New("unique violation"), infra.KindDuplicateKey)

		c := newCouponCommands(store, clock.NewMockClock(testNow))
		_, err := c.Redeem(context.Background(), userID, snap.Code, orderID)
		require.ErrorIs(t, err, commands.ErrCouponAlreadyUsed)
	})
}
