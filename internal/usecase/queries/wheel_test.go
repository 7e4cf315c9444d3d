//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/session"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"
	"wheel-promo-api/tests/common/builder"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSegmentReads struct {
	views []queries.SegmentView
	err   error
}

func (f *fakeSegmentReads) ListActive(context.Context) ([]queries.SegmentView, error) {
	return f.views, f.err
}

type fakeSpinReads struct {
	latest *shared.SpinSnapshot
	err    error
}

func (f *fakeSpinReads) LatestSpinByUser(context.Context, uuid.UUID) (*shared.SpinSnapshot, error) {
	return f.latest, f.err
}

type fakePendingReads struct {
	snap *shared.PendingSpinSnapshot
	err  error
}

func (f *fakePendingReads) FindBySession(context.Context, uuid.UUID) (*shared.PendingSpinSnapshot, error) {
	return f.snap, f.err
}

func newWheelQueries(segments *fakeSegmentReads, spins *fakeSpinReads, pending *fakePendingReads, clk clock.Clock) queries.WheelQueries {
	if segments == nil {
		segments = &fakeSegmentReads{}
	}
	if spins == nil {
		spins = &fakeSpinReads{}
	}
	if pending == nil {
		pending = &fakePendingReads{}
	}
	return queries.NewWheelQueries(segments, spins, pending, config.NewTestConfig().Wheel, clk)
}

func authedIdentity(userID uuid.UUID) shared.Identity {
	return shared.Identity{UserID: &userID}
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	cooldown := config.NewTestConfig().Wheel.Cooldown()

	t.Run("anonymous visitor without a session may spin", func(t *testing.T) {
		q := newWheelQueries(nil, nil, nil, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), shared.Identity{})
		require.NoError(t, err)
		assert.True(t, view.CanSpin)
		assert.Nil(t, view.NextEligibleAt)
	})

	t.Run("anonymous session with no parked win may spin", func(t *testing.T) {
		q := newWheelQueries(nil, nil, &fakePendingReads{}, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), shared.Identity{Session: session.New(uuid.New())})
		require.NoError(t, err)
		assert.True(t, view.CanSpin)
		assert.Nil(t, view.NextEligibleAt)
	})

	t.Run("anonymous session holding a parked win is blocked, never time-gated", func(t *testing.T) {
		snap := builder.NewPendingSpinBuilder().BuildSnapshot()
		q := newWheelQueries(nil, nil, &fakePendingReads{snap: snap}, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), shared.Identity{Session: session.New(snap.SessionID)})
		require.NoError(t, err)
		assert.False(t, view.CanSpin)
		assert.Nil(t, view.NextEligibleAt)
	})

	t.Run("first-time user may spin", func(t *testing.T) {
		q := newWheelQueries(nil, &fakeSpinReads{latest: nil}, nil, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), authedIdentity(uuid.New()))
		require.NoError(t, err)
		assert.True(t, view.CanSpin)
	})

	t.Run("user inside the cooldown is denied with the next eligible time", func(t *testing.T) {
		spunAt := now.Add(-24 * time.Hour)
		spins := &fakeSpinReads{latest: &shared.SpinSnapshot{UserID: uuid.New(), SpunAt: spunAt}}
		q := newWheelQueries(nil, spins, nil, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), authedIdentity(uuid.New()))
		require.NoError(t, err)
		assert.False(t, view.CanSpin)
		require.NotNil(t, view.NextEligibleAt)
		assert.Equal(t, spunAt.Add(cooldown), *view.NextEligibleAt)
	})

	t.Run("cooldown boundary instant is eligible again", func(t *testing.T) {
		spunAt := now.Add(-cooldown)
		spins := &fakeSpinReads{latest: &shared.SpinSnapshot{UserID: uuid.New(), SpunAt: spunAt}}
		q := newWheelQueries(nil, spins, nil, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), authedIdentity(uuid.New()))
		require.NoError(t, err)
		assert.True(t, view.CanSpin)
	})

	t.Run("read failure fails closed without surfacing the error", func(t *testing.T) {
		spins := &fakeSpinReads{err: errors.New("connection reset")}
		q := newWheelQueries(nil, spins, nil, clock.NewMockClock(now))

		view, err := q.CheckEligibility(context.Background(), authedIdentity(uuid.New()))
		require.NoError(t, err)
		assert.False(t, view.CanSpin)
		assert.Nil(t, view.NextEligibleAt)
	})
}

func TestPendingPrize(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("zero session yields nothing", func(t *testing.T) {
		q := newWheelQueries(nil, nil, &fakePendingReads{snap: &shared.PendingSpinSnapshot{}}, clock.NewMockClock(now))

		view, err := q.PendingPrize(context.Background(), session.Context{})
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("session without a parked win yields nothing", func(t *testing.T) {
		q := newWheelQueries(nil, nil, &fakePendingReads{}, clock.NewMockClock(now))

		view, err := q.PendingPrize(context.Background(), session.New(uuid.New()))
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("parked win maps onto the prize view", func(t *testing.T) {
		snap := builder.NewPendingSpinBuilder().BuildSnapshot()
		q := newWheelQueries(nil, nil, &fakePendingReads{snap: snap}, clock.NewMockClock(now))

		view, err := q.PendingPrize(context.Background(), session.New(snap.SessionID))
		require.NoError(t, err)
		require.NotNil(t, view)

		want := queries.PrizeView{
			SegmentID:     snap.SegmentID,
			Label:         snap.Label,
			PrizeType:     snap.PrizeKind,
			DiscountType:  snap.DiscountKind,
			DiscountValue: snap.DiscountValue,
			GiftProductID: snap.GiftProductID,
		}
		if diff := cmp.Diff(want, *view); diff != "" {
			t.Errorf("prize view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("read failure propagates", func(t *testing.T) {
		q := newWheelQueries(nil, nil, &fakePendingReads{err: errors.New("boom")}, clock.NewMockClock(now))

		_, err := q.PendingPrize(context.Background(), session.New(uuid.New()))
		require.Error(t, err)
	})
}

func TestListSegments(t *testing.T) {
	t.Run("passes the active layout through", func(t *testing.T) {
		views := []queries.SegmentView{
			builder.NewSegmentBuilder().WithLabel("10% OFF").BuildView(),
			builder.NewSegmentBuilder().WithLabel("Free Shipping").BuildView(),
		}
		q := newWheelQueries(&fakeSegmentReads{views: views}, nil, nil, clock.NewMockClock(time.Now()))

		got, err := q.ListSegments(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "10% OFF", got[0].Label)
		assert.Equal(t, "Free Shipping", got[1].Label)
	})
}
