//go:build unit

package queries_test

import (
	"context"
	"testing"

	"carental/internal/infra"
	"carental/internal/pkg/errs"
	"carental/internal/usecase/queries"
	"carental/tests/common/builder"
	queriesmock "carental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// requireIs matches through errs.Mark, which plain errors.Is cannot see.
func requireIs(t *testing.T, err, sentinel error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errs.Is(err, sentinel), "expected %q in chain, got %q", sentinel, err)
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	newQueries := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		return queries.NewBookingQueries(store), store
	}

	t.Run("success: owner reads own booking", func(t *testing.T) {
		q, store := newQueries(t)

		b := builder.NewBookingBuilder()
		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)

		view, err := q.GetByID(ctx, b.UserID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, view.ID)
	})

	t.Run("error: another customer's booking is denied", func(t *testing.T) {
		q, store := newQueries(t)

		b := builder.NewBookingBuilder()
		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)

		_, err := q.GetByID(ctx, uuid.New(), b.ID)
		require.ErrorIs(t, err, queries.ErrBookingAccessDenied)
	})

	t.Run("success: system lookup skips the ownership check", func(t *testing.T) {
		q, store := newQueries(t)

		b := builder.NewBookingBuilder()
		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)

		view, err := q.GetByIDSystem(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.UserID, view.UserID)
	})

	t.Run("error: missing booking row maps to the not-found sentinel", func(t *testing.T) {
		q, store := newQueries(t)

		id := uuid.New()
		noRows := infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
		store.EXPECT().FindByID(ctx, id).Return(nil, noRows)

		_, err := q.GetByID(ctx, uuid.New(), id)
		requireIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("error: read store failure is passed through", func(t *testing.T) {
		q, store := newQueries(t)

		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, assert.AnError)

		_, err := q.GetByID(ctx, uuid.New(), id)
		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrBookingNotFound))
	})
}
