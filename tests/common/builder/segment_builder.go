//go:build unit || e2e

package builder

import (
	"wheel-promo-api/internal/domain/wheel"
	reqdto "wheel-promo-api/internal/handler/dto/request"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SegmentBuilder struct {
	Label         string
	DiscountType  string
	DiscountValue int32
	Color         string
	Weight        float64
	PrizeType     string
	GiftProductID *uuid.UUID
	SortOrder     int32
	IsActive      bool
}

func NewSegmentBuilder() *SegmentBuilder {
	return &SegmentBuilder{
		Label:         "10% OFF",
		DiscountType:  string(wheel.DiscountPercentage),
		DiscountValue: 10,
		Color:         "#FF6B6B",
		Weight:        25,
		PrizeType:     string(wheel.PrizeDiscount),
		SortOrder:     0,
		IsActive:      true,
	}
}

func (s *SegmentBuilder) With(mutate func(*SegmentBuilder)) *SegmentBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SegmentBuilder) BuildDomain() (*wheel.Segment, error) {
	discountKind, err := wheel.NewDiscountKind(s.DiscountType)
	if err != nil {
		return nil, err
	}
	prizeKind, err := wheel.NewPrizeKind(s.PrizeType)
	if err != nil {
		return nil, err
	}
	return wheel.NewSegment(
		s.Label,
		discountKind,
		s.DiscountValue,
		s.Color,
		s.Weight,
		prizeKind,
		s.GiftProductID,
		s.SortOrder,
	)
}

func (s *SegmentBuilder) BuildView() queries.SegmentView {
	return queries.SegmentView{
		ID:            uuid.New(),
		Label:         s.Label,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Color:         s.Color,
		Weight:        s.Weight,
		PrizeType:     s.PrizeType,
		GiftProductID: s.GiftProductID,
		SortOrder:     s.SortOrder,
		IsActive:      s.IsActive,
	}
}

func (s *SegmentBuilder) BuildCreateRequestDTO() reqdto.CreateSegmentRequest {
	return reqdto.CreateSegmentRequest{
		Label:         s.Label,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Color:         s.Color,
		Weight:        s.Weight,
		PrizeType:     s.PrizeType,
		GiftProductID: s.GiftProductID,
		SortOrder:     s.SortOrder,
	}
}

func (s *SegmentBuilder) BuildUpdateRequestDTO() reqdto.UpdateSegmentRequest {
	return reqdto.UpdateSegmentRequest{
		Label:         s.Label,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Color:         s.Color,
		Weight:        s.Weight,
		PrizeType:     s.PrizeType,
		GiftProductID: s.GiftProductID,
		SortOrder:     s.SortOrder,
		IsActive:      s.IsActive,
	}
}

// Fluent builder methods
func (s *SegmentBuilder) WithLabel(label string) *SegmentBuilder {
	s.Label = label
	return s
}

func (s *SegmentBuilder) WithWeight(weight float64) *SegmentBuilder {
	s.Weight = weight
	return s
}

func (s *SegmentBuilder) WithDiscount(discountType string, value int32) *SegmentBuilder {
	s.DiscountType = discountType
	s.DiscountValue = value
	return s
}

func (s *SegmentBuilder) WithSortOrder(order int32) *SegmentBuilder {
	s.SortOrder = order
	return s
}

func (s *SegmentBuilder) AsGift(productID uuid.UUID) *SegmentBuilder {
	s.PrizeType = string(wheel.PrizeGift)
	s.GiftProductID = &productID
	return s
}

func (s *SegmentBuilder) AsInactive() *SegmentBuilder {
	s.IsActive = false
	return s
}
