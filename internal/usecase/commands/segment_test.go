//go:build unit

package commands_test

import (
	"context"
	"testing"

	"wheel-promo-api/internal/infra"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/tests/common/builder"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentCreate(t *testing.T) {
	t.Run("valid segment is persisted", func(t *testing.T) {
		store := newFakeStore()
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		id, err := s.Create(context.Background(), builder.NewSegmentBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		require.Len(t, store.segments, 1)
		assert.Equal(t, id, store.segments[0].ID())
	})

	t.Run("domain validation failure is marked", func(t *testing.T) {
		store := newFakeStore()
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		_, err := s.Create(context.Background(), builder.NewSegmentBuilder().WithWeight(-1).BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrSegmentValidation)
		assert.Empty(t, store.segments)
	})
}

func TestSegmentUpdate(t *testing.T) {
	t.Run("unknown segment", func(t *testing.T) {
		store := newFakeStore()
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		err := s.Update(context.Background(), uuid.New(), builder.NewSegmentBuilder().BuildUpdateRequestDTO())
		require.ErrorIs(t, err, commands.ErrSegmentNotFound)
	})

	t.Run("existing segment takes the new values", func(t *testing.T) {
		store := newFakeStore()
		seg := seedSegment(t, store)
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		err := s.Update(context.Background(), seg.ID(), builder.NewSegmentBuilder().WithLabel("20% OFF").BuildUpdateRequestDTO())
		require.NoError(t, err)
		require.Len(t, store.segments, 1)
		assert.Equal(t, "20% OFF", store.segments[0].Label())
	})
}

func TestSegmentDelete(t *testing.T) {
	t.Run("unreferenced segment is removed", func(t *testing.T) {
		store := newFakeStore()
		seg := seedSegment(t, store)
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		require.NoError(t, s.Delete(context.Background(), seg.ID()))
		assert.Empty(t, store.segments)
	})

	t.Run("unknown segment", func(t *testing.T) {
		store := newFakeStore()
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		err := s.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrSegmentNotFound)
	})

	t.Run("segment referenced by spin history cannot be deleted", func(t *testing.T) {
		store := newFakeStore()
		seg := seedSegment(t, store)
		store.segmentDelErr = infra.WrapRepoErr("segment referenced", errors.New("fk violation"), infra.KindForeignKeyViolated)
		s := commands.NewSegmentCommands(&fakeUoW{store: store})

		err := s.Delete(context.Background(), seg.ID())
		require.ErrorIs(t, err, commands.ErrSegmentInUse)
		assert.Len(t, store.segments, 1)
	})
}
