//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/session"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/shared"
	"wheel-promo-api/tests/common/builder"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newWheelCommands(store *fakeStore, clk clock.Clock) commands.WheelCommands {
	return commands.NewWheelCommands(
		&fakeUoW{store: store},
		&fakeCouponViews{store: store},
		wheel.NewSeededSelector(1),
		config.NewTestConfig().Wheel,
		clk,
	)
}

func seedSegment(t *testing.T, store *fakeStore) *wheel.Segment {
	t.Helper()
	seg, err := builder.NewSegmentBuilder().BuildDomain()
	require.NoError(t, err)
	store.addActiveSegment(seg)
	return seg
}

func anonIdentity() shared.Identity {
	return shared.Identity{Session: session.New(uuid.New())}
}

func userIdentity(userID uuid.UUID) shared.Identity {
	return shared.Identity{UserID: &userID, Session: session.New(uuid.New())}
}

// spinRequestDigest mirrors what the spin endpoint stores as its request hash.
func spinRequestDigest(userID uuid.UUID) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s", "POST /api/wheel/spin", userID))
	return hex.EncodeToString(sum[:])
}

func TestSpinAnonymous(t *testing.T) {
	t.Run("win is parked on the session, no coupon issued", func(t *testing.T) {
		store := newFakeStore()
		seg := seedSegment(t, store)
		w := newWheelCommands(store, clock.NewMockClock(testNow))
		identity := anonIdentity()

		result, err := w.Spin(context.Background(), identity, nil)
		require.NoError(t, err)

		assert.True(t, result.Pending)
		assert.Nil(t, result.CouponID)
		assert.Nil(t, result.CouponCode)
		assert.Equal(t, seg.ID(), result.Prize.SegmentID)
		assert.Greater(t, result.Rotation, 0.0)

		parked := store.pending[identity.Session.ID()]
		require.NotNil(t, parked)
		assert.Equal(t, seg.ID(), parked.SegmentID)
		assert.Equal(t, seg.Label(), parked.Label)
		assert.Empty(t, store.coupons)
		assert.Empty(t, store.spins)
	})

	t.Run("respin overwrites the earlier parked win", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		w := newWheelCommands(store, clock.NewMockClock(testNow))
		identity := anonIdentity()

		_, err := w.Spin(context.Background(), identity, nil)
		require.NoError(t, err)
		first := store.pending[identity.Session.ID()]

		_, err = w.Spin(context.Background(), identity, nil)
		require.NoError(t, err)
		second := store.pending[identity.Session.ID()]

		require.NotNil(t, second)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, store.pending, 1)
	})

	t.Run("no active segments", func(t *testing.T) {
		store := newFakeStore()
		w := newWheelCommands(store, clock.NewMockClock(testNow))

		_, err := w.Spin(context.Background(), anonIdentity(), nil)
		require.ErrorIs(t, err, commands.ErrNoActiveSegments)
	})
}

func TestSpinAuthenticated(t *testing.T) {
	t.Run("coupon and spin record are granted together", func(t *testing.T) {
		store := newFakeStore()
		seg := seedSegment(t, store)
		w := newWheelCommands(store, clock.NewMockClock(testNow))
		userID := uuid.New()

		result, err := w.Spin(context.Background(), userIdentity(userID), nil)
		require.NoError(t, err)

		assert.False(t, result.Pending)
		require.NotNil(t, result.CouponID)
		require.NotNil(t, result.CouponCode)
		assert.True(t, coupon.Code(*result.CouponCode).IsWellFormed())

		snap := store.coupons[*result.CouponID]
		require.NotNil(t, snap)
		assert.Equal(t, userID, snap.UserID)
		assert.Equal(t, testNow.Add(config.NewTestConfig().Wheel.CouponTTL()), snap.ExpiresAt)

		require.Len(t, store.spins, 1)
		assert.Equal(t, userID, store.spins[0].UserID)
		assert.Equal(t, seg.ID(), store.spins[0].SegmentID)
		assert.Equal(t, *result.CouponID, store.spins[0].CouponID)
	})

	t.Run("gift prize freezes the product snapshot on the coupon", func(t *testing.T) {
		store := newFakeStore()
		productID := uuid.New()
		name := "Ceramic Mug"
		store.products[productID] = &shared.ProductSnapshot{ID: productID, Name: name, IsActive: true}

		seg, err := builder.NewSegmentBuilder().AsGift(productID).WithDiscount("fixed", 0).BuildDomain()
		require.NoError(t, err)
		store.addActiveSegment(seg)

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		result, err := w.Spin(context.Background(), userIdentity(uuid.New()), nil)
		require.NoError(t, err)

		snap := store.coupons[*result.CouponID]
		require.NotNil(t, snap.GiftProductID)
		assert.Equal(t, productID, *snap.GiftProductID)
		require.NotNil(t, snap.GiftName)
		assert.Equal(t, name, *snap.GiftName)
	})

	t.Run("spin denied inside the cooldown window", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		store.recordSpin(userID, testNow.Add(-24*time.Hour))

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		_, err := w.Spin(context.Background(), userIdentity(userID), nil)
		require.ErrorIs(t, err, commands.ErrSpinNotEligible)
		assert.Empty(t, store.coupons)
	})

	t.Run("spin allowed once the cooldown has fully elapsed", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		cooldown := config.NewTestConfig().Wheel.Cooldown()
		store.recordSpin(userID, testNow.Add(-cooldown))

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		result, err := w.Spin(context.Background(), userIdentity(userID), nil)
		require.NoError(t, err)
		assert.NotNil(t, result.CouponID)
	})

	t.Run("code collision retries with a fresh code", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		store.couponDupes = 2 // two collisions, third attempt lands

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		result, err := w.Spin(context.Background(), userIdentity(uuid.New()), nil)
		require.NoError(t, err)
		assert.NotNil(t, result.CouponID)
	})

	t.Run("code collisions exhaust the retries", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		store.couponDupes = 3

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		_, err := w.Spin(context.Background(), userIdentity(uuid.New()), nil)
		require.ErrorIs(t, err, commands.ErrPrizeGrantFailed)
	})
}

func TestSpinIdempotency(t *testing.T) {
	t.Run("fresh key proceeds and is marked completed", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		key := uuid.New()

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		result, err := w.Spin(context.Background(), userIdentity(userID), &key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)

		record := store.idempotency[idemKey{key: key, userID: userID}]
		require.NotNil(t, record)
		assert.Equal(t, "completed", record.Status)
		require.NotNil(t, record.ResultCouponID)
		assert.Equal(t, *result.CouponID, *record.ResultCouponID)
	})

	t.Run("retry with the same key replays the stored result", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		key := uuid.New()

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		first, err := w.Spin(context.Background(), userIdentity(userID), &key)
		require.NoError(t, err)

		// The cooldown is now running; only the replay path can answer.
		second, err := w.Spin(context.Background(), userIdentity(userID), &key)
		require.NoError(t, err)

		assert.True(t, second.IsReplayed)
		assert.Equal(t, *first.CouponID, *second.CouponID)
		assert.Equal(t, *first.CouponCode, *second.CouponCode)
		assert.Len(t, store.coupons, 1, "replay must not grant twice")
	})

	t.Run("key still processing is rejected", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		key := uuid.New()
		store.idempotency[idemKey{key: key, userID: userID}] = &shared.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Status:      "processing",
			RequestHash: spinRequestDigest(userID),
			ExpiresAt:   testNow.Add(24 * time.Hour),
		}

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		_, err := w.Spin(context.Background(), userIdentity(userID), &key)
		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("key reused for a different request is a conflict", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		userID := uuid.New()
		key := uuid.New()
		store.idempotency[idemKey{key: key, userID: userID}] = &shared.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Status:      "processing",
			RequestHash: "some-other-request",
			ExpiresAt:   testNow.Add(24 * time.Hour),
		}

		w := newWheelCommands(store, clock.NewMockClock(testNow))
		_, err := w.Spin(context.Background(), userIdentity(userID), &key)
		require.ErrorIs(t, err, commands.ErrIdempotencyConflict)
	})
}

func TestFlowLifecycle(t *testing.T) {
	cfg := config.NewTestConfig().Wheel

	t.Run("dialog stays hidden until the offer delay elapses", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		view, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)

		clk.Add(cfg.OfferDelay)
		view, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowOffered), view.State)
	})

	t.Run("dialog is not offered over an empty wheel", func(t *testing.T) {
		store := newFakeStore()
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		clk.Add(cfg.OfferDelay)
		view, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)
	})

	t.Run("session with a parked win is not offered a new spin", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()
		store.pending[identity.Session.ID()] = builder.NewPendingSpinBuilder().
			WithSessionID(identity.Session.ID()).
			BuildSnapshot()

		_, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)

		clk.Add(cfg.OfferDelay)
		view, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)

		clk.Add(10 * time.Minute)
		view, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)
	})

	t.Run("pending lookup failure keeps the dialog hidden", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		store.pendingReadErr = errors.New("connection reset")
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		_, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)

		clk.Add(cfg.OfferDelay)
		view, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)
	})

	t.Run("spin through the API is mirrored on the dialog", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		_, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		clk.Add(cfg.OfferDelay)
		_, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)

		result, err := w.Spin(context.Background(), identity, nil)
		require.NoError(t, err)

		view, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowSpinning), view.State)
		require.NotNil(t, view.Result)
		assert.Equal(t, result.Prize.SegmentID, view.Result.SegmentID)
	})

	t.Run("dismiss closes the dialog for good", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		_, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		clk.Add(cfg.OfferDelay)
		_, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)

		view, err := w.Dismiss(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowDismissed), view.State)

		clk.Add(10 * time.Minute)
		view, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowDismissed), view.State)
	})

	t.Run("idle dialogs are evicted and start over", func(t *testing.T) {
		store := newFakeStore()
		seedSegment(t, store)
		clk := clock.NewMockClock(testNow)
		w := newWheelCommands(store, clk)
		identity := anonIdentity()

		_, err := w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		clk.Add(cfg.OfferDelay)
		_, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)

		view, err := w.Dismiss(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowDismissed), view.State)

		// Long past the idle TTL the registry drops the session; a returning
		// visitor starts a fresh flow inside a fresh offer delay.
		clk.Add(24 * time.Hour)
		view, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowHidden), view.State)

		clk.Add(cfg.OfferDelay)
		view, err = w.FlowState(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, string(wheel.FlowOffered), view.State)
	})
}
