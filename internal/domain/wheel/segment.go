package wheel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel       = errors.New("segment label is required")
	ErrNegativeWeight   = errors.New("segment weight cannot be negative")
	ErrNegativeDiscount = errors.New("discount value cannot be negative")
	ErrPercentTooLarge  = errors.New("percentage discount cannot exceed 100")
)

// Segment is one configured prize slot on the wheel. Weights are relative,
// not normalized; a zero weight keeps the slot visible but unreachable.
type Segment struct {
	id            uuid.UUID
	label         string
	discountKind  DiscountKind
	discountValue int32
	color         string
	weight        float64
	prizeKind     PrizeKind
	giftProductID *uuid.UUID
	sortOrder     int32
	isActive      bool
}

func NewSegment(
	label string,
	discountKind DiscountKind,
	discountValue int32,
	color string,
	weight float64,
	prizeKind PrizeKind,
	giftProductID *uuid.UUID,
	sortOrder int32,
) (*Segment, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if !discountKind.IsValid() {
		return nil, ErrInvalidDiscountKind
	}
	if !prizeKind.IsValid() {
		return nil, ErrInvalidPrizeKind
	}
	if discountValue < 0 {
		return nil, ErrNegativeDiscount
	}
	if discountKind == DiscountPercentage && discountValue > 100 {
		return nil, ErrPercentTooLarge
	}
	if weight < 0 {
		return nil, ErrNegativeWeight
	}
	if prizeKind == PrizeGift && (giftProductID == nil || *giftProductID == uuid.Nil) {
		return nil, ErrGiftWithoutProduct
	}

	return &Segment{
		id:            uuid.New(),
		label:         label,
		discountKind:  discountKind,
		discountValue: discountValue,
		color:         color,
		weight:        weight,
		prizeKind:     prizeKind,
		giftProductID: giftProductID,
		sortOrder:     sortOrder,
		isActive:      true,
	}, nil
}

// ReconstructSegment rebuilds a segment from persisted state without
// re-running creation validation.
func ReconstructSegment(
	id uuid.UUID,
	label string,
	discountKind DiscountKind,
	discountValue int32,
	color string,
	weight float64,
	prizeKind PrizeKind,
	giftProductID *uuid.UUID,
	sortOrder int32,
	isActive bool,
) *Segment {
	return &Segment{
		id:            id,
		label:         label,
		discountKind:  discountKind,
		discountValue: discountValue,
		color:         color,
		weight:        weight,
		prizeKind:     prizeKind,
		giftProductID: giftProductID,
		sortOrder:     sortOrder,
		isActive:      isActive,
	}
}

func (s *Segment) ID() uuid.UUID              { return s.id }
func (s *Segment) Label() string              { return s.label }
func (s *Segment) DiscountKind() DiscountKind { return s.discountKind }
func (s *Segment) DiscountValue() int32       { return s.discountValue }
func (s *Segment) Color() string              { return s.color }
func (s *Segment) Weight() float64            { return s.weight }
func (s *Segment) PrizeKind() PrizeKind       { return s.prizeKind }
func (s *Segment) GiftProductID() *uuid.UUID  { return s.giftProductID }
func (s *Segment) SortOrder() int32           { return s.sortOrder }
func (s *Segment) IsActive() bool             { return s.isActive }

// Prize converts the segment into the prize it awards.
func (s *Segment) Prize() (Prize, error) {
	if s.prizeKind == PrizeGift {
		if s.giftProductID == nil {
			return Prize{}, ErrGiftWithoutProduct
		}
		return NewGiftPrize(s.id, s.label, s.discountKind, s.discountValue, *s.giftProductID)
	}
	return NewDiscountPrize(s.id, s.label, s.discountKind, s.discountValue)
}
