package repository

import (
	"context"
	"errors"
	"testing"

	"restaurant-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReservationRepository_FindBySlot(t *testing.T) {
	db := &fakeDB{results: map[string][][]any{
		"FROM reservations": {
			{"2025-10-29", "19:00", "f1-t1"},
			{"2025-10-29", "19:00", "f2-t5"},
		},
	}}
	repo := NewReservationRepository(db, zap.NewNop())

	got, err := repo.FindBySlot(context.Background(), "2025-10-29", "19:00")

	require.NoError(t, err)
	assert.Equal(t, []*entity.Reservation{
		{Date: "2025-10-29", Time: "19:00", TableID: "f1-t1"},
		{Date: "2025-10-29", Time: "19:00", TableID: "f2-t5"},
	}, got)
	assert.Equal(t, []any{"2025-10-29", "19:00"}, db.calls[0].args)
	assert.Contains(t, db.calls[0].sql, "to_char(reservation_time, 'HH24:MI') = $2")
}

func TestReservationRepository_QueryError(t *testing.T) {
	boom := errors.New("timeout")
	repo := NewReservationRepository(&fakeDB{err: boom}, zap.NewNop())

	_, err := repo.FindBySlot(context.Background(), "2025-10-29", "19:00")
	assert.ErrorIs(t, err, boom)

	_, err = repo.FindAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFixtureReservationRepository_ExactMatchOnly(t *testing.T) {
	repo := NewFixtureReservationRepository([]*entity.Reservation{
		{Date: "2025-10-29", Time: "12:00", TableID: "f1-t4"},
		{Date: "2025-10-29", Time: "12:00", TableID: "f1-t4"},
		{Date: "2025-10-29", Time: "13:00", TableID: "f1-t2"},
	}, zap.NewNop())

	got, err := repo.FindBySlot(context.Background(), "2025-10-29", "12:00")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindBySlot(context.Background(), "2025-10-29", "12:00:00")
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
