package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/errs"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpinNotEligible        = errs.New("spin not eligible")
	ErrNoActiveSegments       = errs.New("no active segments configured")
	ErrIdempotencyInProgress  = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyConflict    = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

const spinEndpoint = "POST /api/wheel/spin"

type SpinResult struct {
	Prize      queries.PrizeView
	Rotation   float64
	CouponID   *uuid.UUID
	CouponCode *string
	// Pending reports that the win is parked on the anonymous session and
	// needs authentication to become a coupon.
	Pending    bool
	IsReplayed bool
}

type WheelCommands interface {
	// Spin draws a prize for the identity. Authenticated spins issue the
	// coupon immediately; anonymous spins park the result on the session.
	Spin(ctx context.Context, identity shared.Identity, idempotencyKey *uuid.UUID) (*SpinResult, error)
	// FlowState advances and reports the dialog state machine for the session.
	FlowState(ctx context.Context, identity shared.Identity) (*queries.FlowView, error)
	// Dismiss closes the dialog for the session. Closing never touches
	// persisted entitlements.
	Dismiss(ctx context.Context, identity shared.Identity) (*queries.FlowView, error)
}

type wheelCommandsImpl struct {
	uow         shared.UnitOfWork
	couponReads queries.CouponReadStore
	selector    *wheel.Selector
	flows       *flowRegistry
	cfg         config.WheelConfig
	clock       clock.Clock
}

func NewWheelCommands(
	uow shared.UnitOfWork,
	couponReads queries.CouponReadStore,
	selector *wheel.Selector,
	cfg config.WheelConfig,
	clk clock.Clock,
) WheelCommands {
	return &wheelCommandsImpl{
		uow:         uow,
		couponReads: couponReads,
		selector:    selector,
		flows:       newFlowRegistry(clk, cfg, wheel.StdTimerFactory),
		cfg:         cfg,
		clock:       clk,
	}
}

func (w *wheelCommandsImpl) Spin(ctx context.Context, identity shared.Identity, idempotencyKey *uuid.UUID) (*SpinResult, error) {
	if identity.IsAuthenticated() && idempotencyKey != nil {
		if replayed, err := w.replayIfSeen(ctx, *identity.UserID, *idempotencyKey); err != nil || replayed != nil {
			return replayed, err
		}
	}

	if !identity.IsAuthenticated() {
		return w.spinAnonymous(ctx, identity)
	}
	return w.spinAuthenticated(ctx, identity, idempotencyKey)
}

func (w *wheelCommandsImpl) spinAnonymous(ctx context.Context, identity shared.Identity) (*SpinResult, error) {
	outcome, prize, err := w.draw(ctx, w.uow.CommandReads())
	if err != nil {
		return nil, err
	}

	now := w.clock.Now()
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PendingSpins().Upsert(ctx, tx.DB(), identity.Session.ID(), prize, now)
	})
	if err != nil {
		return nil, err
	}

	w.mirrorSpinOnFlow(identity, prize)

	return &SpinResult{
		Prize:    prizeView(prize),
		Rotation: outcome.Rotation,
		Pending:  true,
	}, nil
}

func (w *wheelCommandsImpl) spinAuthenticated(ctx context.Context, identity shared.Identity, idempotencyKey *uuid.UUID) (*SpinResult, error) {
	userID := *identity.UserID

	var (
		result  *SpinResult
		outcome wheel.SpinOutcome
		prize   wheel.Prize
	)
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := w.clock.Now()

		if idempotencyKey != nil {
			replay, err := w.claimIdempotencyKey(ctx, tx, userID, *idempotencyKey, now)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		if err := w.requireCooldownElapsed(ctx, tx.Reads(), userID, now); err != nil {
			return err
		}

		var err error
		outcome, prize, err = w.draw(ctx, tx.Reads())
		if err != nil {
			return err
		}

		grant, err := grantPrize(ctx, tx, userID, prize, now, w.cfg)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), *idempotencyKey, userID, grant.CouponID); err != nil {
				return errs.Mark(err, ErrIdempotencyCheckFailed)
			}
		}

		code := grant.Code
		result = &SpinResult{
			Prize:      prizeView(prize),
			Rotation:   outcome.Rotation,
			CouponID:   &grant.CouponID,
			CouponCode: &code,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		w.mirrorSpinOnFlow(identity, prize)
	}
	return result, nil
}

// replayIfSeen answers completed retries from the stored result without
// opening a write transaction.
func (w *wheelCommandsImpl) replayIfSeen(ctx context.Context, userID, key uuid.UUID) (*SpinResult, error) {
	record, err := w.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if record == nil || record.Status != "completed" {
		return nil, nil
	}
	return w.replayFromRecord(ctx, record)
}

// claimIdempotencyKey inserts the key inside the spin transaction. A lost
// insert means another request got there first: completed ones are replayed,
// in-flight ones rejected.
func (w *wheelCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, userID, key uuid.UUID, now time.Time) (*SpinResult, error) {
	requestHash := spinRequestHash(userID)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, spinEndpoint, requestHash, now.Add(24*time.Hour))
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	record, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil || record == nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyConflict
	}

	switch record.Status {
	case "completed":
		return w.replayFromRecord(ctx, record)
	case "processing":
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (w *wheelCommandsImpl) replayFromRecord(ctx context.Context, record *shared.IdempotencyRecord) (*SpinResult, error) {
	if record.ResultCouponID == nil {
		return nil, errs.New("completed spin missing result coupon")
	}
	view, err := w.couponReads.FindByID(ctx, *record.ResultCouponID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	code := view.Code
	return &SpinResult{
		Prize: queries.PrizeView{
			PrizeType:     view.PrizeType,
			DiscountType:  view.DiscountType,
			DiscountValue: view.DiscountValue,
			GiftProductID: view.GiftProductID,
		},
		CouponID:   &view.ID,
		CouponCode: &code,
		IsReplayed: true,
	}, nil
}

// draw loads the active layout and runs the weighted selection.
func (w *wheelCommandsImpl) draw(ctx context.Context, reads shared.CommandReads) (wheel.SpinOutcome, wheel.Prize, error) {
	segments, err := reads.ActiveSegments(ctx)
	if err != nil {
		return wheel.SpinOutcome{}, wheel.Prize{}, err
	}

	outcome, err := w.selector.SelectPrize(segments)
	if err != nil {
		return wheel.SpinOutcome{}, wheel.Prize{}, ErrNoActiveSegments
	}

	prize, err := outcome.Segment.Prize()
	if err != nil {
		return wheel.SpinOutcome{}, wheel.Prize{}, err
	}
	return outcome, prize, nil
}

func (w *wheelCommandsImpl) requireCooldownElapsed(ctx context.Context, reads shared.CommandReads, userID uuid.UUID, now time.Time) error {
	latest, err := reads.LatestSpinByUser(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrSpinNotEligible)
	}
	if latest != nil && now.Before(latest.SpunAt.Add(w.cfg.Cooldown())) {
		return ErrSpinNotEligible
	}
	return nil
}

func (w *wheelCommandsImpl) FlowState(ctx context.Context, identity shared.Identity) (*queries.FlowView, error) {
	flow := w.flows.getOrCreate(identity.Session.ID())

	canSpin := w.mayOfferSpin(ctx, identity)

	haveSegments := false
	if segments, err := w.uow.CommandReads().ActiveSegments(ctx); err == nil {
		for _, seg := range segments {
			if seg.Weight() > 0 {
				haveSegments = true
				break
			}
		}
	}

	flow.Offer(canSpin, haveSegments)
	return flowView(flow), nil
}

// mayOfferSpin applies the eligibility gate at the offer step: authenticated
// identities are held to the cooldown, anonymous sessions to their single
// unclaimed win. A read failure keeps the dialog hidden.
func (w *wheelCommandsImpl) mayOfferSpin(ctx context.Context, identity shared.Identity) bool {
	if identity.IsAuthenticated() {
		return w.requireCooldownElapsed(ctx, w.uow.CommandReads(), *identity.UserID, w.clock.Now()) == nil
	}

	pending, err := w.uow.CommandReads().PendingSpinBySession(ctx, identity.Session.ID())
	return err == nil && pending == nil
}

func (w *wheelCommandsImpl) Dismiss(_ context.Context, identity shared.Identity) (*queries.FlowView, error) {
	flow := w.flows.getOrCreate(identity.Session.ID())
	flow.Dismiss()
	return flowView(flow), nil
}

// mirrorSpinOnFlow keeps the dialog state machine in step with a spin taken
// through the API. Persistence is authoritative; a refused transition here is
// not an error.
func (w *wheelCommandsImpl) mirrorSpinOnFlow(identity shared.Identity, prize wheel.Prize) {
	flow := w.flows.getOrCreate(identity.Session.ID())
	flow.Offer(true, true)
	flow.StartSpin(prize)
}

func flowView(flow *wheel.Flow) *queries.FlowView {
	view := &queries.FlowView{State: string(flow.State())}
	if prize := flow.Result(); prize != nil {
		pv := prizeView(*prize)
		view.Result = &pv
	}
	return view
}

func prizeView(prize wheel.Prize) queries.PrizeView {
	view := queries.PrizeView{
		SegmentID:     prize.SegmentID(),
		Label:         prize.Label(),
		PrizeType:     prize.Kind().String(),
		DiscountType:  prize.DiscountKind().String(),
		DiscountValue: prize.DiscountValue(),
	}
	if productID, ok := prize.GiftProductID(); ok {
		view.GiftProductID = &productID
	}
	return view
}

// spinRequestHash covers the request identity; the spin endpoint carries no
// body, so the user is the whole payload.
func spinRequestHash(userID uuid.UUID) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s", spinEndpoint, userID))
	return hex.EncodeToString(sum[:])
}

// flowIdleTTL bounds how long an untouched dialog survives. Session ids come
// from client headers, so without eviction the registry grows with every
// churned or spoofed id.
const flowIdleTTL = 30 * time.Minute

// flowRegistry holds the in-memory dialog state machines, one per wheel
// session. Flows are presentation state; losing one on restart or eviction
// re-shows at most one dialog.
type flowRegistry struct {
	mu        sync.Mutex
	flows     map[uuid.UUID]*flowEntry
	nextSweep time.Time

	clk      clock.Clock
	cfg      config.WheelConfig
	newTimer wheel.TimerFactory
}

type flowEntry struct {
	flow    *wheel.Flow
	touched time.Time
}

func newFlowRegistry(clk clock.Clock, cfg config.WheelConfig, newTimer wheel.TimerFactory) *flowRegistry {
	return &flowRegistry{
		flows:    make(map[uuid.UUID]*flowEntry),
		clk:      clk,
		cfg:      cfg,
		newTimer: newTimer,
	}
}

func (r *flowRegistry) getOrCreate(sessionID uuid.UUID) *wheel.Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clk.Now()
	r.evictIdleLocked(now)

	if entry, ok := r.flows[sessionID]; ok {
		entry.touched = now
		return entry.flow
	}
	flow := wheel.NewFlow(r.clk, r.cfg.OfferDelay, r.cfg.SpinDuration, r.newTimer)
	r.flows[sessionID] = &flowEntry{flow: flow, touched: now}
	return flow
}

// evictIdleLocked drops flows untouched for the idle TTL, closing each so a
// scheduled transition cannot fire after teardown. Sweeps are amortized over
// lookups.
func (r *flowRegistry) evictIdleLocked(now time.Time) {
	if now.Before(r.nextSweep) {
		return
	}
	r.nextSweep = now.Add(flowIdleTTL / 2)

	for id, entry := range r.flows {
		if now.Sub(entry.touched) >= flowIdleTTL {
			entry.flow.Close()
			delete(r.flows, id)
		}
	}
}
