package commands

import (
	"context"

	reqdto "wheel-promo-api/internal/handler/dto/request"
	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/pkg/errs"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSegmentNotFound   = errs.New("wheel segment not found")
	ErrSegmentValidation = errs.New("segment validation failed")
	ErrSegmentInUse      = errs.New("segment referenced by recorded spins")
)

type SegmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateSegmentRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSegmentRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type segmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSegmentCommands(uow shared.UnitOfWork) SegmentCommands {
	return &segmentCommandsImpl{uow: uow}
}

func (s *segmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateSegmentRequest) (uuid.UUID, error) {
	seg, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrSegmentValidation)
	}

	var id uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Segments().Create(ctx, tx.DB(), seg)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *segmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSegmentRequest) error {
	seg, err := req.ToDomain(id)
	if err != nil {
		return errs.Mark(err, ErrSegmentValidation)
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Segments().Update(ctx, tx.DB(), seg); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSegmentNotFound
			}
			return err
		}
		return nil
	})
}

func (s *segmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Segments().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSegmentNotFound
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				// Spin history references the segment; deactivate instead.
				return ErrSegmentInUse
			}
			return err
		}
		return nil
	})
}
