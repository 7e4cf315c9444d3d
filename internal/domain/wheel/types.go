package wheel

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

func (k DiscountKind) String() string {
	return string(k)
}

func NewDiscountKind(s string) (DiscountKind, error) {
	kind := DiscountKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidDiscountKind
	}
	return kind, nil
}

type PrizeKind string

const (
	PrizeDiscount PrizeKind = "discount"
	PrizeGift     PrizeKind = "gift"
)

func (k PrizeKind) IsValid() bool {
	switch k {
	case PrizeDiscount, PrizeGift:
		return true
	default:
		return false
	}
}

func (k PrizeKind) String() string {
	return string(k)
}

func NewPrizeKind(s string) (PrizeKind, error) {
	kind := PrizeKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidPrizeKind
	}
	return kind, nil
}
