package wheel

import (
	"errors"
	"math/rand/v2"
)

var ErrNoSpinnableSegments = errors.New("no spinnable segments configured")

const (
	minExtraTurns = 3
	turnSpread    = 3 // extra full turns drawn from [minExtraTurns, minExtraTurns+turnSpread)
)

// SpinOutcome is the committed result of one spin. The rotation is a pure
// presentation value; the winning segment is decided before any animation
// runs and cannot change afterwards.
type SpinOutcome struct {
	Segment  *Segment
	Index    int
	Rotation float64 // terminal wheel rotation in degrees, clockwise
}

// Selector draws prizes by roulette selection over relative weights.
type Selector struct {
	rng *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSelector returns a deterministic selector for tests.
func NewSeededSelector(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(seed, seed))}
}

// SelectPrize walks the segments in configured order, subtracting each weight
// from a uniform draw over the total; the first segment that brings the
// remainder to zero or below wins. Ties break positionally, zero-weight
// segments are unreachable.
func (s *Selector) SelectPrize(segments []*Segment) (SpinOutcome, error) {
	total := 0.0
	for _, seg := range segments {
		total += seg.Weight()
	}
	if len(segments) == 0 || total <= 0 {
		return SpinOutcome{}, ErrNoSpinnableSegments
	}

	r := s.rng.Float64() * total
	winner := -1
	for i, seg := range segments {
		w := seg.Weight()
		if w == 0 {
			continue
		}
		r -= w
		if r <= 0 {
			winner = i
			break
		}
	}
	if winner < 0 {
		// Float accumulation can leave a sliver above zero; the last
		// weighted segment owns it.
		for i := len(segments) - 1; i >= 0; i-- {
			if segments[i].Weight() > 0 {
				winner = i
				break
			}
		}
	}

	return SpinOutcome{
		Segment:  segments[winner],
		Index:    winner,
		Rotation: s.rotationFor(winner, len(segments)),
	}, nil
}

// rotationFor computes the terminal angle so the pointer lands on the center
// of the winning slice, after a few full turns, nudged by a small jitter so
// the wheel never stops in a mechanically identical spot.
func (s *Selector) rotationFor(index, count int) float64 {
	slice := 360.0 / float64(count)
	center := float64(index)*slice + slice/2

	turns := minExtraTurns + s.rng.IntN(turnSpread)
	jitter := (s.rng.Float64() - 0.5) * slice * 0.4

	return float64(turns)*360 + (360 - center) + jitter
}
