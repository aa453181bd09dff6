package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// reservationService is the concrete implementation of ReservationService.
type reservationService struct {
	reservationRepository store.ReservationRepository
	uuid                  *utils.UUIDGenerator
	clock                 Clock
	logger                *logger.Logger
}

// NewReservationService constructs a ReservationService over the given
// repository.
func NewReservationService(reservationRepository store.ReservationRepository, logger *logger.Logger) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		uuid:                  utils.NewUUIDGenerator(),
		clock:                 realClock{},
		logger:                logger,
	}
}

func (r *reservationService) ListTables(ctx context.Context) ([]models.Table, error) {
	tables, err := r.reservationRepository.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables failed: %w", err)
	}
	return tables, nil
}

// Availability returns active tables that fit the party and have no active
// reservation for the date and time slot.
func (r *reservationService) Availability(ctx context.Context, date, timeSlot string, partySize int) ([]models.Table, error) {
	if err := validateReservationSlot(date, timeSlot); err != nil {
		return nil, err
	}
	if partySize <= 0 {
		return nil, ErrInvalidDataProvided
	}

	tables, err := r.reservationRepository.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables failed: %w", err)
	}

	booked, err := r.reservationRepository.ListActiveReservations(ctx, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("listing active reservations failed: %w", err)
	}
	bookedTables := make(map[int64]bool, len(booked))
	for _, reservation := range booked {
		bookedTables[reservation.TableID] = true
	}

	var available []models.Table
	for _, table := range tables {
		if table.Active && table.FitsParty(partySize) && !bookedTables[table.TableID] {
			available = append(available, table)
		}
	}

	return available, nil
}

// CreateReservation books a table.
//
// The table must be active, fit the party, and have no active reservation
// for the same date and time slot. Past dates are rejected. The reservation
// gets a UUID identifier and an 8-character confirmation code customers use
// to look it up without logging in.
func (r *reservationService) CreateReservation(ctx context.Context, userID int64, req models.CreateReservationRequest) (models.TableReservation, error) {
	log := logger.FromContext(ctx)

	if err := validateReservationSlot(req.Date, req.Time); err != nil {
		return models.TableReservation{}, err
	}
	if req.TableID <= 0 || req.PartySize <= 0 {
		return models.TableReservation{}, ErrInvalidDataProvided
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return models.TableReservation{}, ErrInvalidDataProvided
	}
	today := r.clock.Now().Format("2006-01-02")
	if day.Format("2006-01-02") < today {
		return models.TableReservation{}, ErrInvalidDataProvided
	}

	table, err := r.reservationRepository.GetTable(ctx, req.TableID)
	if err != nil {
		return models.TableReservation{}, fmt.Errorf("table lookup failed: %w", err)
	}
	if !table.Active || !table.FitsParty(req.PartySize) {
		return models.TableReservation{}, ErrTableUnavailable
	}

	booked, err := r.reservationRepository.ListActiveReservations(ctx, req.Date, req.Time)
	if err != nil {
		return models.TableReservation{}, fmt.Errorf("listing active reservations failed: %w", err)
	}
	for _, existing := range booked {
		if existing.TableID == req.TableID {
			log.Error().
				Int64("table_id", req.TableID).
				Str("date", req.Date).
				Str("time", req.Time).
				Msg("table already booked for slot")
			return models.TableReservation{}, ErrTableUnavailable
		}
	}

	code, err := utils.GenerateConfirmationCode()
	if err != nil {
		return models.TableReservation{}, fmt.Errorf("confirmation code generation failed: %w", err)
	}

	reservation := models.TableReservation{
		ReservationID:    r.uuid.Generate(),
		TableID:          req.TableID,
		UserID:           userID,
		Date:             req.Date,
		Time:             req.Time,
		PartySize:        req.PartySize,
		Occasion:         req.Occasion,
		Requests:         req.Requests,
		Status:           models.ReservationPending,
		ConfirmationCode: code,
	}

	created, err := r.reservationRepository.CreateReservation(ctx, reservation)
	if err != nil {
		if errors.Is(err, store.ErrTableSlotTaken) {
			log.Error().
				Int64("table_id", req.TableID).
				Str("date", req.Date).
				Str("time", req.Time).
				Msg("table slot taken between availability check and insert")
			return models.TableReservation{}, ErrTableUnavailable
		}
		return models.TableReservation{}, fmt.Errorf("reservation creation failed: %w", err)
	}

	log.Info().
		Str("confirmation_code", created.ConfirmationCode).
		Int64("table_id", created.TableID).
		Str("date", created.Date).
		Str("time", created.Time).
		Msg("reservation created")

	return created, nil
}

func (r *reservationService) GetByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
	if confirmationCode == "" {
		return models.TableReservation{}, ErrInvalidDataProvided
	}
	reservation, err := r.reservationRepository.GetReservationByCode(ctx, confirmationCode)
	if err != nil {
		return models.TableReservation{}, fmt.Errorf("reservation lookup failed: %w", err)
	}
	return reservation, nil
}

func (r *reservationService) ListForDate(ctx context.Context, date string) ([]models.TableReservation, error) {
	if date == "" {
		return nil, ErrInvalidDataProvided
	}
	reservations, err := r.reservationRepository.ListReservationsForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("listing reservations failed: %w", err)
	}
	return reservations, nil
}

// UpdateStatus advances a reservation along its lifecycle. The transition is
// validated first; the conditional repository update guards against
// concurrent transitions.
func (r *reservationService) UpdateStatus(ctx context.Context, confirmationCode string, next models.ReservationStatus) (models.TableReservation, error) {
	log := logger.FromContext(ctx)

	reservation, err := r.GetByCode(ctx, confirmationCode)
	if err != nil {
		return models.TableReservation{}, err
	}

	if !reservation.Status.CanTransitionTo(next) {
		log.Error().
			Str("confirmation_code", confirmationCode).
			Str("from", string(reservation.Status)).
			Str("to", string(next)).
			Msg("reservation status transition not allowed")
		return models.TableReservation{}, ErrInvalidStatusTransition
	}

	if err := r.reservationRepository.UpdateReservationStatus(ctx, reservation.ReservationID, reservation.Status, next); err != nil {
		return models.TableReservation{}, fmt.Errorf("reservation status update failed: %w", err)
	}

	reservation.Status = next
	return reservation, nil
}

func validateReservationSlot(date, timeSlot string) error {
	if date == "" || timeSlot == "" {
		return ErrInvalidDataProvided
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDataProvided
	}
	if _, err := time.Parse("15:04", timeSlot); err != nil {
		return ErrInvalidDataProvided
	}
	return nil
}
