//go:build unit

package commands_test

import (
	"context"
	"time"

	"wheel-promo-api/internal/domain/coupon"
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// fakeStore is shared in-memory persistence behind the unit-of-work fakes.
// Error fields inject failures per concern.
type fakeStore struct {
	segments    []*wheel.Segment
	segmentsErr error

	spins     []shared.SpinSnapshot
	latestErr error

	pending        map[uuid.UUID]*shared.PendingSpinSnapshot
	pendingReadErr error

	coupons        map[uuid.UUID]*shared.CouponSnapshot
	couponDupes    int // remaining Create calls to fail with a duplicate key
	markUsedErr    error
	segmentDelErr  error

	idempotency map[idemKey]*shared.IdempotencyRecord

	products map[uuid.UUID]*shared.ProductSnapshot
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pending:     make(map[uuid.UUID]*shared.PendingSpinSnapshot),
		coupons:     make(map[uuid.UUID]*shared.CouponSnapshot),
		idempotency: make(map[idemKey]*shared.IdempotencyRecord),
		products:    make(map[uuid.UUID]*shared.ProductSnapshot),
	}
}

func (s *fakeStore) addActiveSegment(seg *wheel.Segment) {
	s.segments = append(s.segments, seg)
}

func (s *fakeStore) recordSpin(userID uuid.UUID, spunAt time.Time) {
	s.spins = append(s.spins, shared.SpinSnapshot{
		ID:        uuid.New(),
		UserID:    userID,
		SegmentID: uuid.New(),
		CouponID:  uuid.New(),
		SpunAt:    spunAt,
	})
}

func (s *fakeStore) couponByCode(code string) *shared.CouponSnapshot {
	for _, snap := range s.coupons {
		if snap.Code == code {
			return snap
		}
	}
	return nil
}

// fakeUoW runs the transaction function directly against the store. Rollback
// is not simulated; tests assert on calls, not on partial-write recovery.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Segments() shared.SegmentRepository        { return &fakeSegmentRepo{store: t.store} }
func (t *fakeTx) Spins() shared.SpinRepository              { return &fakeSpinRepo{store: t.store} }
func (t *fakeTx) PendingSpins() shared.PendingSpinRepository { return &fakePendingRepo{store: t.store} }
func (t *fakeTx) Coupons() shared.CouponRepository          { return &fakeCouponRepo{store: t.store} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository { return &fakeIdemRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository              { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads                { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                               { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ActiveSegments(context.Context) ([]*wheel.Segment, error) {
	if r.store.segmentsErr != nil {
		return nil, r.store.segmentsErr
	}
	return r.store.segments, nil
}

func (r *fakeReads) LatestSpinByUser(_ context.Context, userID uuid.UUID) (*shared.SpinSnapshot, error) {
	if r.store.latestErr != nil {
		return nil, r.store.latestErr
	}
	var latest *shared.SpinSnapshot
	for i := range r.store.spins {
		snap := r.store.spins[i]
		if snap.UserID != userID {
			continue
		}
		if latest == nil || snap.SpunAt.After(latest.SpunAt) {
			latest = &snap
		}
	}
	return latest, nil
}

func (r *fakeReads) PendingSpinBySession(_ context.Context, sessionID uuid.UUID) (*shared.PendingSpinSnapshot, error) {
	if r.store.pendingReadErr != nil {
		return nil, r.store.pendingReadErr
	}
	return r.store.pending[sessionID], nil
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if product, ok := r.store.products[id]; ok {
		return product, nil
	}
	return nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if record, ok := r.store.idempotency[idemKey{key: key, userID: userID}]; ok {
		return record, nil
	}
	return nil, nil
}

type fakeSegmentRepo struct {
	store *fakeStore
}

func (f *fakeSegmentRepo) Create(_ context.Context, _ db.DBTX, seg *wheel.Segment) (uuid.UUID, error) {
	f.store.segments = append(f.store.segments, seg)
	return seg.ID(), nil
}

func (f *fakeSegmentRepo) Update(_ context.Context, _ db.DBTX, seg *wheel.Segment) error {
	for i, existing := range f.store.segments {
		if existing.ID() == seg.ID() {
			f.store.segments[i] = seg
			return nil
		}
	}
	return infra.WrapRepoErr("segment not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeSegmentRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if f.store.segmentDelErr != nil {
		return f.store.segmentDelErr
	}
	for i, existing := range f.store.segments {
		if existing.ID() == id {
			f.store.segments = append(f.store.segments[:i], f.store.segments[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("segment not found", errors.New("no rows"), infra.KindNotFound)
}

type fakeSpinRepo struct {
	store *fakeStore
}

func (f *fakeSpinRepo) Create(_ context.Context, _ db.DBTX, userID, segmentID, couponID uuid.UUID, spunAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	f.store.spins = append(f.store.spins, shared.SpinSnapshot{
		ID:        id,
		UserID:    userID,
		SegmentID: segmentID,
		CouponID:  couponID,
		SpunAt:    spunAt,
	})
	return id, nil
}

type fakePendingRepo struct {
	store *fakeStore
}

func (f *fakePendingRepo) Upsert(_ context.Context, _ db.DBTX, sessionID uuid.UUID, prize wheel.Prize, at time.Time) error {
	snap := &shared.PendingSpinSnapshot{
		ID:            uuid.New(),
		SessionID:     sessionID,
		SegmentID:     prize.SegmentID(),
		Label:         prize.Label(),
		PrizeKind:     prize.Kind().String(),
		DiscountKind:  prize.DiscountKind().String(),
		DiscountValue: prize.DiscountValue(),
		CreatedAt:     at,
	}
	if productID, ok := prize.GiftProductID(); ok {
		snap.GiftProductID = &productID
	}
	f.store.pending[sessionID] = snap
	return nil
}

func (f *fakePendingRepo) FindBySessionForUpdate(_ context.Context, _ db.DBTX, sessionID uuid.UUID) (*shared.PendingSpinSnapshot, error) {
	return f.store.pending[sessionID], nil
}

func (f *fakePendingRepo) DeleteBySession(_ context.Context, _ db.DBTX, sessionID uuid.UUID) error {
	delete(f.store.pending, sessionID)
	return nil
}

type fakeCouponRepo struct {
	store *fakeStore
}

func (f *fakeCouponRepo) Create(_ context.Context, _ db.DBTX, c *coupon.UserCoupon) error {
	if f.store.couponDupes > 0 {
		f.store.couponDupes--
		return infra.WrapRepoErr("coupon code collision", errors.New("unique violation"), infra.KindDuplicateKey)
	}

	snap := &shared.CouponSnapshot{
		ID:            c.ID(),
		UserID:        c.UserID(),
		Code:          c.Code().String(),
		DiscountKind:  c.DiscountKind().String(),
		DiscountValue: c.DiscountValue(),
		PrizeKind:     c.PrizeKind().String(),
		IsUsed:        c.IsUsed(),
		ExpiresAt:     c.ExpiresAt(),
		CreatedAt:     c.CreatedAt(),
	}
	if gift := c.Gift(); gift != nil {
		productID := gift.ProductID
		snap.GiftProductID = &productID
		snap.GiftName = gift.Name
		snap.GiftImage = gift.ImageURL
	}
	f.store.coupons[c.ID()] = snap
	return nil
}

func (f *fakeCouponRepo) FindByCodeForUpdate(_ context.Context, _ db.DBTX, code string) (*shared.CouponSnapshot, error) {
	if snap := f.store.couponByCode(code); snap != nil {
		return snap, nil
	}
	return nil, infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeCouponRepo) MarkUsed(_ context.Context, _ db.DBTX, id, orderID uuid.UUID, usedAt time.Time) error {
	if f.store.markUsedErr != nil {
		return f.store.markUsedErr
	}
	snap, ok := f.store.coupons[id]
	if !ok {
		return infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
	}
	snap.IsUsed = true
	snap.UsedAt = &usedAt
	snap.OrderID = &orderID
	return nil
}

type fakeIdemRepo struct {
	store *fakeStore
}

func (f *fakeIdemRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key: key, userID: userID}
	if _, exists := f.store.idempotency[k]; exists {
		return false, nil
	}
	f.store.idempotency[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (f *fakeIdemRepo) MarkCompleted(_ context.Context, _ db.DBTX, key, userID, resultCouponID uuid.UUID) error {
	record, ok := f.store.idempotency[idemKey{key: key, userID: userID}]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", errors.New("no rows"), infra.KindNotFound)
	}
	record.Status = "completed"
	record.ResultCouponID = &resultCouponID
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) UpdateLastLogin(context.Context, db.DBTX, uuid.UUID) error {
	return nil
}

// fakeCouponViews serves the read side for idempotent replay.
type fakeCouponViews struct {
	store *fakeStore
}

func (f *fakeCouponViews) ListByUser(_ context.Context, userID uuid.UUID) ([]queries.CouponView, error) {
	var views []queries.CouponView
	for _, snap := range f.store.coupons {
		if snap.UserID == userID {
			views = append(views, viewFromSnapshot(snap))
		}
	}
	return views, nil
}

func (f *fakeCouponViews) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	snap, ok := f.store.coupons[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
	}
	view := viewFromSnapshot(snap)
	return &view, nil
}

func viewFromSnapshot(snap *shared.CouponSnapshot) queries.CouponView {
	return queries.CouponView{
		ID:            snap.ID,
		Code:          snap.Code,
		DiscountType:  snap.DiscountKind,
		DiscountValue: snap.DiscountValue,
		PrizeType:     snap.PrizeKind,
		GiftProductID: snap.GiftProductID,
		GiftName:      snap.GiftName,
		GiftImage:     snap.GiftImage,
		IsUsed:        snap.IsUsed,
		UsedAt:        snap.UsedAt,
		OrderID:       snap.OrderID,
		ExpiresAt:     snap.ExpiresAt,
		CreatedAt:     snap.CreatedAt,
	}
}
