package wheel

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrizeKind    = errors.New("invalid prize kind")
	ErrInvalidDiscountKind = errors.New("invalid discount kind")
	ErrGiftWithoutProduct  = errors.New("gift prize requires a product reference")
)

// Prize is the closed variant of what a spin can win. A gift prize always
// carries its product reference; a discount prize never does. Constructing an
// illegal combination is impossible outside this package.
type Prize struct {
	segmentID     uuid.UUID
	label         string
	kind          PrizeKind
	discountKind  DiscountKind
	discountValue int32
	giftProductID uuid.UUID // set only for PrizeGift
}

func NewDiscountPrize(segmentID uuid.UUID, label string, discountKind DiscountKind, discountValue int32) (Prize, error) {
	if !discountKind.IsValid() {
		return Prize{}, ErrInvalidDiscountKind
	}
	return Prize{
		segmentID:     segmentID,
		label:         label,
		kind:          PrizeDiscount,
		discountKind:  discountKind,
		discountValue: discountValue,
	}, nil
}

func NewGiftPrize(segmentID uuid.UUID, label string, discountKind DiscountKind, discountValue int32, giftProductID uuid.UUID) (Prize, error) {
	if giftProductID == uuid.Nil {
		return Prize{}, ErrGiftWithoutProduct
	}
	if !discountKind.IsValid() {
		return Prize{}, ErrInvalidDiscountKind
	}
	return Prize{
		segmentID:     segmentID,
		label:         label,
		kind:          PrizeGift,
		discountKind:  discountKind,
		discountValue: discountValue,
		giftProductID: giftProductID,
	}, nil
}

func (p Prize) SegmentID() uuid.UUID        { return p.segmentID }
func (p Prize) Label() string               { return p.label }
func (p Prize) Kind() PrizeKind             { return p.kind }
func (p Prize) DiscountKind() DiscountKind  { return p.discountKind }
func (p Prize) DiscountValue() int32        { return p.discountValue }
func (p Prize) IsGift() bool                { return p.kind == PrizeGift }

// GiftProductID returns the product reference for gift prizes.
func (p Prize) GiftProductID() (uuid.UUID, bool) {
	if p.kind != PrizeGift {
		return uuid.Nil, false
	}
	return p.giftProductID, true
}
