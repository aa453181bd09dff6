package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// scheduleRepository is the PostgreSQL-backed implementation of
// [ScheduleRepository]. Employment records live in "staff_profiles",
// reusable shift definitions in "shift_templates", and scheduled shifts in
// "shifts".
type scheduleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScheduleRepository constructs a [ScheduleRepository] backed by the
// provided database connection and logger.
func NewScheduleRepository(db *DB, logger *logger.Logger) ScheduleRepository {
	logger.Debug().Msg("creating schedule repository")
	return &scheduleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *scheduleRepository) CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.UserID, profile.EmployeeID, profile.Position, profile.Department,
		profile.HourlyRateCents, profile.HireDate, profile.Active)
	if err := row.Scan(&profile.ProfileID, &profile.CreatedAt); err != nil {
		log.Err(err).Str("func", "*scheduleRepository.CreateProfile").Msg("error inserting profile")
		return models.StaffProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

func (r *scheduleRepository) ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProfilesQuery(activeOnly)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListProfiles").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListProfiles").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.StaffProfile
	for rows.Next() {
		profile, err := scanProfile(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*scheduleRepository.ListProfiles").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func (r *scheduleRepository) GetProfileByUserID(ctx context.Context, userID int64) (models.StaffProfile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getProfileByUserID, userID)
	profile, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StaffProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*scheduleRepository.GetProfileByUserID").Msg("error: scanning error")
		return models.StaffProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

func (r *scheduleRepository) CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTemplate,
		template.Name, template.StartTime, template.EndTime, template.BreakMinutes, template.Active)
	if err := row.Scan(&template.TemplateID); err != nil {
		log.Err(err).Str("func", "*scheduleRepository.CreateTemplate").Msg("error inserting template")
		return models.ShiftTemplate{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return template, nil
}

func (r *scheduleRepository) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTemplatesQuery(activeOnly)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListTemplates").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListTemplates").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var templates []models.ShiftTemplate
	for rows.Next() {
		var t models.ShiftTemplate
		if err := rows.Scan(&t.TemplateID, &t.Name, &t.StartTime, &t.EndTime, &t.BreakMinutes, &t.Active); err != nil {
			log.Err(err).Str("func", "*scheduleRepository.ListTemplates").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

func (r *scheduleRepository) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createShift,
		shift.ShiftID, shift.ProfileID, nullableID(shift.TemplateID), shift.Date,
		shift.StartTime, shift.EndTime, shift.BreakMinutes, shift.Station,
		shift.ShiftRole, shift.Status, shift.Overtime, shift.Notes,
		nullableID(shift.CreatedBy))
	if err := row.Scan(&shift.CreatedAt); err != nil {
		log.Err(err).Str("func", "*scheduleRepository.CreateShift").Msg("error inserting shift")
		return models.Shift{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return shift, nil
}

func (r *scheduleRepository) ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListShiftsQuery(profileID, fromDate, toDate)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListShifts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListShifts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		shift, err := scanShift(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*scheduleRepository.ListShifts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

func (r *scheduleRepository) GetShift(ctx context.Context, shiftID string) (models.Shift, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getShift, shiftID)
	shift, err := scanShift(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shift{}, ErrShiftNotFound
		}
		log.Err(err).Str("func", "*scheduleRepository.GetShift").Msg("error: scanning error")
		return models.Shift{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return shift, nil
}

// UpdateShiftStatus advances the status only when the current status still
// matches from. A zero-row update means another actor got there first.
func (r *scheduleRepository) UpdateShiftStatus(ctx context.Context, shiftID string, from, to models.ShiftStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateShiftStatus, shiftID, from, to)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.UpdateShiftStatus").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrShiftStatusConflict
	}

	return nil
}

// PublishShiftsForDate moves every draft shift on the given date to
// published and reports how many rows changed.
func (r *scheduleRepository) PublishShiftsForDate(ctx context.Context, date string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, publishShiftsForDate, date)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.PublishShiftsForDate").Msg("error executing update")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return affected, nil
}

// scanShift reads one shifts row; template_id and created_by are nullable.
func scanShift(scan func(dest ...any) error) (models.Shift, error) {
	var shift models.Shift
	var templateID, createdBy sql.NullInt64

	err := scan(&shift.ShiftID, &shift.ProfileID, &templateID, &shift.Date,
		&shift.StartTime, &shift.EndTime, &shift.BreakMinutes, &shift.Station,
		&shift.ShiftRole, &shift.Status, &shift.Overtime, &shift.Notes,
		&createdBy, &shift.CreatedAt)
	if err != nil {
		return models.Shift{}, err
	}
	shift.TemplateID = templateID.Int64
	shift.CreatedBy = createdBy.Int64

	return shift, nil
}

func scanProfile(scan func(dest ...any) error) (models.StaffProfile, error) {
	var profile models.StaffProfile
	err := scan(&profile.ProfileID, &profile.UserID, &profile.EmployeeID,
		&profile.Position, &profile.Department, &profile.HourlyRateCents,
		&profile.HireDate, &profile.Active, &profile.CreatedAt)
	if err != nil {
		return models.StaffProfile{}, err
	}
	return profile, nil
}
