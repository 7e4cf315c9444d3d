package wheel

import (
	"sync"
	"time"

	"wheel-promo-api/internal/pkg/clock"
)

type FlowState string

const (
	FlowHidden    FlowState = "hidden"
	FlowOffered   FlowState = "offered"
	FlowSpinning  FlowState = "spinning"
	FlowResolved  FlowState = "resolved"
	FlowDismissed FlowState = "dismissed"
)

// TimerHandle is a cancellable pending state transition. Stop reports whether
// the transition was prevented from firing.
type TimerHandle interface {
	Stop() bool
}

type TimerFactory func(d time.Duration, fn func()) TimerHandle

type stdTimer struct {
	t *time.Timer
}

func (s stdTimer) Stop() bool { return s.t.Stop() }

func StdTimerFactory(d time.Duration, fn func()) TimerHandle {
	return stdTimer{t: time.AfterFunc(d, fn)}
}

// Flow sequences one visitor's wheel dialog:
//
//	Hidden → Offered → Spinning → Resolved → Dismissed
//
// The dialog is offered once per flow lifetime, only after the offer delay has
// elapsed since the visitor was first seen. The spin result is committed when
// the spin starts; the Spinning→Resolved transition after the animation
// duration is presentation only. Invalid transitions are no-ops.
type Flow struct {
	mu sync.Mutex

	state        FlowState
	firstSeenAt  time.Time
	offeredOnce  bool
	result       *Prize

	clk          clock.Clock
	offerDelay   time.Duration
	spinDuration time.Duration
	newTimer     TimerFactory
	spinTimer    TimerHandle
}

func NewFlow(clk clock.Clock, offerDelay, spinDuration time.Duration, newTimer TimerFactory) *Flow {
	return &Flow{
		state:        FlowHidden,
		firstSeenAt:  clk.Now(),
		clk:          clk,
		offerDelay:   offerDelay,
		spinDuration: spinDuration,
		newTimer:     newTimer,
	}
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) FirstSeenAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.firstSeenAt
}

// Offer transitions Hidden→Offered when the delay has elapsed, the dialog has
// not been offered before, and the caller confirms the gate allows a spin
// over a non-empty segment set. Reports whether the flow is now offered.
func (f *Flow) Offer(canSpin, haveSegments bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowOffered {
		return true
	}
	if f.state != FlowHidden || f.offeredOnce {
		return false
	}
	if !canSpin || !haveSegments {
		return false
	}
	if f.clk.Now().Sub(f.firstSeenAt) < f.offerDelay {
		return false
	}

	f.state = FlowOffered
	f.offeredOnce = true
	return true
}

// StartSpin commits the prize and schedules the Resolved transition after the
// animation duration. Reports false (no-op) unless the flow is Offered.
func (f *Flow) StartSpin(prize Prize) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FlowOffered {
		return false
	}

	f.state = FlowSpinning
	f.result = &prize
	f.spinTimer = f.newTimer(f.spinDuration, f.resolve)
	return true
}

func (f *Flow) resolve() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FlowSpinning {
		return
	}
	f.state = FlowResolved
	f.spinTimer = nil
}

// Result returns the committed prize, present from the moment the spin starts.
func (f *Flow) Result() *Prize {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Dismiss closes the dialog and drops transient result data. Persisted
// entitlements (pending spins, coupons) are unaffected. No-op while spinning.
func (f *Flow) Dismiss() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case FlowOffered, FlowResolved:
		f.state = FlowDismissed
		f.result = nil
		return true
	default:
		return false
	}
}

// Close cancels any pending spin timer so a torn-down flow cannot fire a late
// transition.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.spinTimer != nil {
		f.spinTimer.Stop()
		f.spinTimer = nil
	}
}
