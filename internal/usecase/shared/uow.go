package shared

import (
	"context"
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Segments() SegmentRepository
	Spins() SpinRepository
	PendingSpins() PendingSpinRepository
	Coupons() CouponRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ActiveSegments(ctx context.Context) ([]*wheel.Segment, error)
	LatestSpinByUser(ctx context.Context, userID uuid.UUID) (*SpinSnapshot, error)
	// PendingSpinBySession returns the session's unclaimed spin without
	// locking, nil when nothing is pending.
	PendingSpinBySession(ctx context.Context, sessionID uuid.UUID) (*PendingSpinSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type SegmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, seg *wheel.Segment) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, seg *wheel.Segment) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SpinRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID, segmentID, couponID uuid.UUID, spunAt time.Time) (uuid.UUID, error)
}

type PendingSpinRepository interface {
	// Upsert overwrites any prior unclaimed spin for the session (at most one
	// pending spin per session).
	Upsert(ctx context.Context, tx db.DBTX, sessionID uuid.UUID, prize wheel.Prize, at time.Time) error
	// FindBySessionForUpdate locks the pending row for the claim transaction.
	// Returns nil when the session has nothing pending.
	FindBySessionForUpdate(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*PendingSpinSnapshot, error)
	DeleteBySession(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.UserCoupon) error
	// FindByCodeForUpdate locks the coupon row for redemption.
	FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*CouponSnapshot, error)
	MarkUsed(ctx context.Context, tx db.DBTX, id, orderID uuid.UUID, usedAt time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key. Reports false when another request already
	// holds it.
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, key, userID, resultCouponID uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
