// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservationService(reservations *mockReservationRepository, now time.Time) *reservationService {
	return &reservationService{
		reservationRepository: reservations,
		uuid:                  utils.NewUUIDGenerator(),
		clock:                 fixedClock{now: now},
		logger:                logger.NewLogger("test", false),
	}
}

func diningTables() []models.Table {
	return []models.Table{
		{TableID: 1, TableNumber: "T1", Capacity: 2, MinPartySize: 1, MaxPartySize: 2, Active: true},
		{TableID: 2, TableNumber: "T2", Capacity: 4, MinPartySize: 2, MaxPartySize: 4, Active: true},
		{TableID: 3, TableNumber: "T3", Capacity: 6, MinPartySize: 4, MaxPartySize: 6, Active: true},
		{TableID: 4, TableNumber: "T4", Capacity: 4, MinPartySize: 2, MaxPartySize: 4, Active: false},
	}
}

func TestAvailability_FiltersCapacityBookingsAndInactive(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	reservations := &mockReservationRepository{
		listTablesFn: func(ctx context.Context) ([]models.Table, error) {
			return diningTables(), nil
		},
		listActiveFn: func(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error) {
			assert.Equal(t, "2026-08-25", date)
			assert.Equal(t, "19:00", timeSlot)
			return []models.TableReservation{{ReservationID: "res-1", TableID: 2, Status: models.ReservationConfirmed}}, nil
		},
	}
	svc := newTestReservationService(reservations, now)

	available, err := svc.Availability(context.Background(), "2026-08-25", "19:00", 3)
	require.NoError(t, err)

	// party of 3: T1 too small, T2 booked, T3 below its minimum, T4 inactive
	require.Empty(t, available)

	available, err = svc.Availability(context.Background(), "2026-08-25", "19:00", 4)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "T3", available[0].TableNumber)
}

func TestAvailability_InvalidSlot(t *testing.T) {
	svc := newTestReservationService(&mockReservationRepository{}, time.Now())

	_, err := svc.Availability(context.Background(), "25-08-2026", "19:00", 2)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Availability(context.Background(), "2026-08-25", "7pm", 2)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Availability(context.Background(), "2026-08-25", "19:00", 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateReservation_Success(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	reservations := &mockReservationRepository{
		getTableFn: func(ctx context.Context, tableID int64) (models.Table, error) {
			return models.Table{TableID: tableID, TableNumber: "T2", Capacity: 4, MinPartySize: 2, MaxPartySize: 4, Active: true}, nil
		},
	}
	svc := newTestReservationService(reservations, now)

	created, err := svc.CreateReservation(context.Background(), 5, models.CreateReservationRequest{
		TableID:   2,
		Date:      "2026-08-25",
		Time:      "19:00",
		PartySize: 3,
		Occasion:  "birthday",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ReservationID)
	assert.Len(t, created.ConfirmationCode, 8)
	assert.Equal(t, models.ReservationPending, created.Status)
	assert.Equal(t, int64(5), created.UserID)
}

func TestCreateReservation_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	svc := newTestReservationService(&mockReservationRepository{}, now)

	_, err := svc.CreateReservation(context.Background(), 5, models.CreateReservationRequest{
		TableID:   2,
		Date:      "2026-08-23",
		Time:      "19:00",
		PartySize: 3,
	})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateReservation_SlotConflict(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	reservations := &mockReservationRepository{
		getTableFn: func(ctx context.Context, tableID int64) (models.Table, error) {
			return models.Table{TableID: tableID, Capacity: 4, MinPartySize: 2, MaxPartySize: 4, Active: true}, nil
		},
		listActiveFn: func(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error) {
			return []models.TableReservation{{ReservationID: "res-1", TableID: 2, Status: models.ReservationConfirmed}}, nil
		},
	}
	svc := newTestReservationService(reservations, now)

	_, err := svc.CreateReservation(context.Background(), 5, models.CreateReservationRequest{
		TableID:   2,
		Date:      "2026-08-25",
		Time:      "19:00",
		PartySize: 3,
	})
	require.ErrorIs(t, err, ErrTableUnavailable)
}

func TestCreateReservation_InsertRaceSurfacesUnavailable(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	// the availability check passes, but a concurrent booking takes the slot
	// before the insert lands
	reservations := &mockReservationRepository{
		getTableFn: func(ctx context.Context, tableID int64) (models.Table, error) {
			return models.Table{TableID: tableID, Capacity: 4, MinPartySize: 2, MaxPartySize: 4, Active: true}, nil
		},
		createFn: func(ctx context.Context, reservation models.TableReservation) (models.TableReservation, error) {
			return models.TableReservation{}, store.ErrTableSlotTaken
		},
	}
	svc := newTestReservationService(reservations, now)

	_, err := svc.CreateReservation(context.Background(), 5, models.CreateReservationRequest{
		TableID:   2,
		Date:      "2026-08-25",
		Time:      "19:00",
		PartySize: 3,
	})
	require.ErrorIs(t, err, ErrTableUnavailable)
}

func TestCreateReservation_PartyTooBigForTable(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	reservations := &mockReservationRepository{
		getTableFn: func(ctx context.Context, tableID int64) (models.Table, error) {
			return models.Table{TableID: tableID, Capacity: 2, MinPartySize: 1, MaxPartySize: 2, Active: true}, nil
		},
	}
	svc := newTestReservationService(reservations, now)

	_, err := svc.CreateReservation(context.Background(), 5, models.CreateReservationRequest{
		TableID:   1,
		Date:      "2026-08-25",
		Time:      "19:00",
		PartySize: 6,
	})
	require.ErrorIs(t, err, ErrTableUnavailable)
}

func TestReservationUpdateStatus_AllowedTransition(t *testing.T) {
	var from, to models.ReservationStatus
	reservations := &mockReservationRepository{
		getByCodeFn: func(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
			return models.TableReservation{ReservationID: "res-1", ConfirmationCode: confirmationCode, Status: models.ReservationPending}, nil
		},
		updateStatusFn: func(ctx context.Context, reservationID string, f, n models.ReservationStatus) error {
			from, to = f, n
			return nil
		},
	}
	svc := newTestReservationService(reservations, time.Now())

	updated, err := svc.UpdateStatus(context.Background(), "ABCD1234", models.ReservationConfirmed)
	require.NoError(t, err)

	assert.Equal(t, models.ReservationConfirmed, updated.Status)
	assert.Equal(t, models.ReservationPending, from)
	assert.Equal(t, models.ReservationConfirmed, to)
}

func TestReservationUpdateStatus_ForbiddenTransition(t *testing.T) {
	reservations := &mockReservationRepository{
		getByCodeFn: func(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
			return models.TableReservation{ReservationID: "res-1", Status: models.ReservationCompleted}, nil
		},
	}
	svc := newTestReservationService(reservations, time.Now())

	_, err := svc.UpdateStatus(context.Background(), "ABCD1234", models.ReservationSeated)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
}
