package shared

import (
	"time"

	"wheel-promo-api/internal/pkg/session"

	"github.com/google/uuid"
)

// Identity is who is spinning: an authenticated user, an anonymous browser
// session, or both (a logged-in user still carries their wheel session).
type Identity struct {
	UserID  *uuid.UUID
	Session session.Context
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != nil
}

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

type SpinSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SegmentID uuid.UUID
	CouponID  uuid.UUID
	SpunAt    time.Time
}

type PendingSpinSnapshot struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	SegmentID     uuid.UUID
	Label         string
	PrizeKind     string
	DiscountKind  string
	DiscountValue int32
	GiftProductID *uuid.UUID
	CreatedAt     time.Time
}

type ProductSnapshot struct {
	ID       uuid.UUID
	Name     string
	ImageURL *string
	IsActive bool
}

type CouponSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Code          string
	DiscountKind  string
	DiscountValue int32
	PrizeKind     string
	GiftProductID *uuid.UUID
	GiftName      *string
	GiftImage     *string
	IsUsed        bool
	UsedAt        *time.Time
	OrderID       *uuid.UUID
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

type UserRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

type IdempotencyRecord struct {
	Key            uuid.UUID
	UserID         uuid.UUID
	Status         string
	RequestHash    string
	ResultCouponID *uuid.UUID
	ExpiresAt      time.Time
}
