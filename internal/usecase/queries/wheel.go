package queries

import (
	"context"
	"log/slog"

	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/session"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type WheelQueries interface {
	// ListSegments returns the active wheel layout in display order.
	ListSegments(ctx context.Context) ([]SegmentView, error)
	// CheckEligibility answers whether the identity may spin right now.
	CheckEligibility(ctx context.Context, identity shared.Identity) (*EligibilityView, error)
	// PendingPrize returns the session's parked anonymous win, nil when the
	// session has nothing waiting to be claimed.
	PendingPrize(ctx context.Context, sess session.Context) (*PrizeView, error)
}

type SegmentReadStore interface {
	ListActive(ctx context.Context) ([]SegmentView, error)
}

// AdminSegmentReadStore exposes the full layout, inactive segments included.
type AdminSegmentReadStore interface {
	ListAll(ctx context.Context) ([]SegmentView, error)
}

type SpinReadStore interface {
	LatestSpinByUser(ctx context.Context, userID uuid.UUID) (*shared.SpinSnapshot, error)
}

type PendingSpinReadStore interface {
	FindBySession(ctx context.Context, sessionID uuid.UUID) (*shared.PendingSpinSnapshot, error)
}

type wheelQueriesImpl struct {
	segments SegmentReadStore
	spins    SpinReadStore
	pending  PendingSpinReadStore
	cfg      config.WheelConfig
	clock    clock.Clock
}

func NewWheelQueries(segments SegmentReadStore, spins SpinReadStore, pending PendingSpinReadStore, cfg config.WheelConfig, clk clock.Clock) WheelQueries {
	return &wheelQueriesImpl{
		segments: segments,
		spins:    spins,
		pending:  pending,
		cfg:      cfg,
		clock:    clk,
	}
}

func (q *wheelQueriesImpl) ListSegments(ctx context.Context) ([]SegmentView, error) {
	return q.segments.ListActive(ctx)
}

// CheckEligibility fails closed: if the spin history cannot be read the
// identity is reported ineligible rather than risking a double grant.
func (q *wheelQueriesImpl) CheckEligibility(ctx context.Context, identity shared.Identity) (*EligibilityView, error) {
	if !identity.IsAuthenticated() {
		// Anonymous visitors are never time-gated; they hold at most one
		// unclaimed win, so an existing parked spin blocks the next one.
		if identity.Session.IsZero() {
			return &EligibilityView{CanSpin: true}, nil
		}
		snap, err := q.pending.FindBySession(ctx, identity.Session.ID())
		if err != nil {
			slog.Warn("pending lookup failed, denying spin",
				"session_id", identity.Session.ID().String(),
				"error", err.Error())
			return &EligibilityView{CanSpin: false}, nil
		}
		return &EligibilityView{CanSpin: snap == nil}, nil
	}

	latest, err := q.spins.LatestSpinByUser(ctx, *identity.UserID)
	if err != nil {
		slog.Warn("eligibility check failed, denying spin",
			"user_id", identity.UserID.String(),
			"error", err.Error())
		return &EligibilityView{CanSpin: false}, nil
	}
	if latest == nil {
		return &EligibilityView{CanSpin: true}, nil
	}

	nextEligible := latest.SpunAt.Add(q.cfg.Cooldown())
	if q.clock.Now().Before(nextEligible) {
		return &EligibilityView{CanSpin: false, NextEligibleAt: &nextEligible}, nil
	}
	return &EligibilityView{CanSpin: true}, nil
}

func (q *wheelQueriesImpl) PendingPrize(ctx context.Context, sess session.Context) (*PrizeView, error) {
	if sess.IsZero() {
		return nil, nil
	}

	snap, err := q.pending.FindBySession(ctx, sess.ID())
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	return &PrizeView{
		SegmentID:     snap.SegmentID,
		Label:         snap.Label,
		PrizeType:     snap.PrizeKind,
		DiscountType:  snap.DiscountKind,
		DiscountValue: snap.DiscountValue,
		GiftProductID: snap.GiftProductID,
	}, nil
}
