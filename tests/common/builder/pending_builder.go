//go:build unit || e2e

package builder

import (
	"time"

	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PendingSpinBuilder struct {
	SessionID     uuid.UUID
	SegmentID     uuid.UUID
	Label         string
	PrizeType     string
	DiscountType  string
	DiscountValue int32
	GiftProductID *uuid.UUID
	CreatedAt     time.Time
}

func NewPendingSpinBuilder() *PendingSpinBuilder {
	return &PendingSpinBuilder{
		SessionID:     uuid.New(),
		SegmentID:     uuid.New(),
		Label:         "10% OFF",
		PrizeType:     string(wheel.PrizeDiscount),
		DiscountType:  string(wheel.DiscountPercentage),
		DiscountValue: 10,
		CreatedAt:     time.Now(),
	}
}

func (p *PendingSpinBuilder) With(mutate func(*PendingSpinBuilder)) *PendingSpinBuilder {
	mutate(p)
	return p
}

func (p *PendingSpinBuilder) BuildSnapshot() *shared.PendingSpinSnapshot {
	return &shared.PendingSpinSnapshot{
		ID:            uuid.New(),
		SessionID:     p.SessionID,
		SegmentID:     p.SegmentID,
		Label:         p.Label,
		PrizeKind:     p.PrizeType,
		DiscountKind:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		GiftProductID: p.GiftProductID,
		CreatedAt:     p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PendingSpinBuilder) WithSessionID(id uuid.UUID) *PendingSpinBuilder {
	p.SessionID = id
	return p
}

func (p *PendingSpinBuilder) AsGift(productID uuid.UUID) *PendingSpinBuilder {
	p.PrizeType = string(wheel.PrizeGift)
	p.GiftProductID = &productID
	return p
}
