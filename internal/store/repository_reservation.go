package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
	"github.com/jackc/pgerrcode"
)

// reservationRepository is the PostgreSQL-backed implementation of
// [ReservationRepository]. Tables live in "tables", bookings in
// "table_reservations" keyed by a UUID with a unique confirmation code.
type reservationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReservationRepository constructs a [ReservationRepository] backed by the
// provided database connection and logger.
func NewReservationRepository(db *DB, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("creating reservation repository")
	return &reservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reservationRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTables)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.ListTables").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tables []models.Table
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.TableID, &t.TableNumber, &t.Capacity, &t.Type,
			&t.Location, &t.MinPartySize, &t.MaxPartySize, &t.Active); err != nil {
			log.Err(err).Str("func", "*reservationRepository.ListTables").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tables = append(tables, t)
	}

	return tables, rows.Err()
}

func (r *reservationRepository) GetTable(ctx context.Context, tableID int64) (models.Table, error) {
	log := logger.FromContext(ctx)

	var t models.Table
	row := r.db.QueryRowContext(ctx, getTable, tableID)
	if err := row.Scan(&t.TableID, &t.TableNumber, &t.Capacity, &t.Type,
		&t.Location, &t.MinPartySize, &t.MaxPartySize, &t.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Table{}, ErrTableNotFound
		}
		log.Err(err).Str("func", "*reservationRepository.GetTable").Msg("error: scanning error")
		return models.Table{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return t, nil
}

// CreateReservation inserts the booking. The partial unique index on
// (table_id, date, time_slot) over active statuses closes the race between
// two concurrent bookings of the same slot; the constraint name
// distinguishes it from the confirmation code's uniqueness.
func (r *reservationRepository) CreateReservation(ctx context.Context, reservation models.TableReservation) (models.TableReservation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReservation,
		reservation.ReservationID, reservation.TableID, nullableID(reservation.UserID),
		reservation.Date, reservation.Time, reservation.PartySize, reservation.Occasion,
		reservation.Requests, reservation.Status, reservation.ConfirmationCode)
	if err := row.Scan(&reservation.CreatedAt, &reservation.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation && postgresConstraint(err) == "uq_reservations_active_slot" {
			return models.TableReservation{}, ErrTableSlotTaken
		}
		log.Err(err).Str("func", "*reservationRepository.CreateReservation").Msg("error inserting reservation")
		return models.TableReservation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) GetReservationByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getReservationByCode, confirmationCode)
	reservation, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TableReservation{}, ErrReservationNotFound
		}
		log.Err(err).Str("func", "*reservationRepository.GetReservationByCode").Msg("error: scanning error")
		return models.TableReservation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reservation, nil
}

// ListActiveReservations returns reservations still holding a table slot on
// the date, optionally narrowed to one time slot. Used for availability
// checks.
func (r *reservationRepository) ListActiveReservations(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveReservationsQuery(date, timeSlot)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.ListActiveReservations").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listReservations(ctx, query, args...)
}

func (r *reservationRepository) ListReservationsForDate(ctx context.Context, date string) ([]models.TableReservation, error) {
	return r.listReservations(ctx, listReservationsForDate, date)
}

// UpdateReservationStatus advances the status only when the current status
// still matches from. A zero-row update means another actor got there first.
func (r *reservationRepository) UpdateReservationStatus(ctx context.Context, reservationID string, from, to models.ReservationStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateReservationStatus, reservationID, from, to)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.UpdateReservationStatus").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrReservationStatusConflict
	}

	return nil
}

func (r *reservationRepository) listReservations(ctx context.Context, query string, args ...any) ([]models.TableReservation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.listReservations").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reservations []models.TableReservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*reservationRepository.listReservations").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}

// scanReservation reads one table_reservations row; user_id is nullable for
// walk-in bookings taken over the phone.
func scanReservation(scan func(dest ...any) error) (models.TableReservation, error) {
	var reservation models.TableReservation
	var userID sql.NullInt64

	err := scan(&reservation.ReservationID, &reservation.TableID, &userID,
		&reservation.Date, &reservation.Time, &reservation.PartySize,
		&reservation.Occasion, &reservation.Requests, &reservation.Status,
		&reservation.ConfirmationCode, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return models.TableReservation{}, err
	}
	reservation.UserID = userID.Int64

	return reservation, nil
}
