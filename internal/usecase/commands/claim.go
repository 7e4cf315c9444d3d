package commands

import (
	"context"

	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/pkg/config"
	"wheel-promo-api/internal/pkg/errs"
	"wheel-promo-api/internal/pkg/session"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoPendingSpin     = errs.New("no pending spin for this session")
	ErrClaimNotEligible  = errs.New("pending spin forfeited, user already spun recently")
	ErrInvalidClaimPrize = errs.New("pending spin holds an invalid prize")
)

type ClaimResult struct {
	Prize      queries.PrizeView
	CouponID   uuid.UUID
	CouponCode string
}

type ClaimCommands interface {
	// Claim converts the session's pending spin into a coupon for the newly
	// authenticated user. The pending row is consumed either way: granted
	// when the user is eligible, forfeited when their cooldown is running.
	Claim(ctx context.Context, userID uuid.UUID, sess session.Context) (*ClaimResult, error)
}

type claimCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.WheelConfig
	clock clock.Clock
}

func NewClaimCommands(uow shared.UnitOfWork, cfg config.WheelConfig, clk clock.Clock) ClaimCommands {
	return &claimCommandsImpl{
		uow:   uow,
		cfg:   cfg,
		clock: clk,
	}
}

func (c *claimCommandsImpl) Claim(ctx context.Context, userID uuid.UUID, sess session.Context) (*ClaimResult, error) {
	if sess.IsZero() {
		return nil, ErrNoPendingSpin
	}

	var (
		result    *ClaimResult
		forfeited bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		sessionID := sess.ID()

		// Row lock serializes concurrent claims for the same session; the
		// loser of the race sees no pending row.
		pending, err := tx.PendingSpins().FindBySessionForUpdate(ctx, tx.DB(), sessionID)
		if err != nil {
			return err
		}
		if pending == nil {
			return ErrNoPendingSpin
		}

		latest, err := tx.Reads().LatestSpinByUser(ctx, userID)
		if err != nil {
			return err
		}
		if latest != nil && now.Before(latest.SpunAt.Add(c.cfg.Cooldown())) {
			// The user already used their spin elsewhere. The anonymous win
			// is forfeited so a single person cannot stack grants across
			// sessions. Returning nil commits the delete; the error is
			// surfaced after the transaction.
			if err := tx.PendingSpins().DeleteBySession(ctx, tx.DB(), sessionID); err != nil {
				return err
			}
			forfeited = true
			return nil
		}

		prize, err := prizeFromPending(pending)
		if err != nil {
			return errs.Mark(err, ErrInvalidClaimPrize)
		}

		grant, err := grantPrize(ctx, tx, userID, prize, now, c.cfg)
		if err != nil {
			return err
		}

		if err := tx.PendingSpins().DeleteBySession(ctx, tx.DB(), sessionID); err != nil {
			return err
		}

		result = &ClaimResult{
			Prize:      prizeView(prize),
			CouponID:   grant.CouponID,
			CouponCode: grant.Code,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if forfeited {
		return nil, ErrClaimNotEligible
	}
	return result, nil
}
