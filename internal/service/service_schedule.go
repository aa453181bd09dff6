package service

import (
	"context"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// scheduleService is the concrete implementation of ScheduleService.
type scheduleService struct {
	scheduleRepository store.ScheduleRepository
	uuid               *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewScheduleService constructs a ScheduleService over the given repository.
func NewScheduleService(scheduleRepository store.ScheduleRepository, logger *logger.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepository: scheduleRepository,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

func (s *scheduleService) CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error) {
	log := logger.FromContext(ctx)

	if profile.UserID <= 0 || profile.EmployeeID == "" || profile.Position == "" {
		log.Error().
			Int64("user_id", profile.UserID).
			Str("employee_id", profile.EmployeeID).
			Msg("invalid staff profile data provided")
		return models.StaffProfile{}, ErrInvalidDataProvided
	}

	created, err := s.scheduleRepository.CreateProfile(ctx, profile)
	if err != nil {
		return models.StaffProfile{}, fmt.Errorf("staff profile creation failed: %w", err)
	}
	return created, nil
}

func (s *scheduleService) ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error) {
	profiles, err := s.scheduleRepository.ListProfiles(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing staff profiles failed: %w", err)
	}
	return profiles, nil
}

func (s *scheduleService) CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error) {
	if template.Name == "" || template.StartTime == "" || template.EndTime == "" {
		return models.ShiftTemplate{}, ErrInvalidDataProvided
	}

	created, err := s.scheduleRepository.CreateTemplate(ctx, template)
	if err != nil {
		return models.ShiftTemplate{}, fmt.Errorf("shift template creation failed: %w", err)
	}
	return created, nil
}

func (s *scheduleService) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error) {
	templates, err := s.scheduleRepository.ListTemplates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing shift templates failed: %w", err)
	}
	return templates, nil
}

// CreateShift schedules a shift, rejecting any that overlaps an existing
// shift of the same profile on the same date. New shifts start as drafts
// unless a status is supplied.
func (s *scheduleService) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	log := logger.FromContext(ctx)

	if shift.ProfileID <= 0 || shift.Date == "" || shift.StartTime == "" || shift.EndTime == "" {
		log.Error().Int64("profile_id", shift.ProfileID).Str("date", shift.Date).Msg("invalid shift data provided")
		return models.Shift{}, ErrInvalidDataProvided
	}
	if shift.Status == "" {
		shift.Status = models.ShiftDraft
	}
	if !shift.Status.Valid() {
		log.Error().Str("status", string(shift.Status)).Msg("unknown shift status provided")
		return models.Shift{}, ErrInvalidDataProvided
	}

	existing, err := s.scheduleRepository.ListShifts(ctx, shift.ProfileID, shift.Date, shift.Date)
	if err != nil {
		return models.Shift{}, fmt.Errorf("listing shifts failed: %w", err)
	}
	for _, other := range existing {
		if shift.Overlaps(other) {
			log.Error().
				Int64("profile_id", shift.ProfileID).
				Str("date", shift.Date).
				Str("existing_shift", other.ShiftID).
				Msg("shift overlaps an existing shift")
			return models.Shift{}, ErrShiftOverlap
		}
	}

	shift.ShiftID = s.uuid.Generate()

	created, err := s.scheduleRepository.CreateShift(ctx, shift)
	if err != nil {
		return models.Shift{}, fmt.Errorf("shift creation failed: %w", err)
	}

	return created, nil
}

func (s *scheduleService) ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error) {
	if fromDate == "" || toDate == "" {
		return nil, ErrInvalidDataProvided
	}
	shifts, err := s.scheduleRepository.ListShifts(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("listing shifts failed: %w", err)
	}
	return shifts, nil
}

// ListShiftsForUser resolves the staff profile linked to userID and returns
// that profile's shifts in the range.
func (s *scheduleService) ListShiftsForUser(ctx context.Context, userID int64, fromDate, toDate string) ([]models.Shift, error) {
	if userID <= 0 || fromDate == "" || toDate == "" {
		return nil, ErrInvalidDataProvided
	}

	profile, err := s.scheduleRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("staff profile lookup failed: %w", err)
	}

	shifts, err := s.scheduleRepository.ListShifts(ctx, profile.ProfileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("listing shifts failed: %w", err)
	}
	return shifts, nil
}

// UpdateShiftStatus advances a shift along its publication lifecycle. The
// transition is validated first; the conditional repository update guards
// against concurrent transitions.
func (s *scheduleService) UpdateShiftStatus(ctx context.Context, shiftID string, next models.ShiftStatus) error {
	log := logger.FromContext(ctx)

	if shiftID == "" || !next.Valid() {
		log.Error().Str("shift_id", shiftID).Str("status", string(next)).Msg("invalid shift status data provided")
		return ErrInvalidDataProvided
	}

	shift, err := s.scheduleRepository.GetShift(ctx, shiftID)
	if err != nil {
		return fmt.Errorf("shift lookup failed: %w", err)
	}
	if !shift.Status.CanTransitionTo(next) {
		log.Error().
			Str("shift_id", shiftID).
			Str("from", string(shift.Status)).
			Str("to", string(next)).
			Msg("shift status transition not allowed")
		return ErrInvalidStatusTransition
	}

	if err := s.scheduleRepository.UpdateShiftStatus(ctx, shiftID, shift.Status, next); err != nil {
		return fmt.Errorf("shift status update failed: %w", err)
	}
	return nil
}

// PublishDay publishes every draft shift on the given date at once and
// returns how many shifts were published.
func (s *scheduleService) PublishDay(ctx context.Context, date string) (int64, error) {
	log := logger.FromContext(ctx)

	if date == "" {
		return 0, ErrInvalidDataProvided
	}

	published, err := s.scheduleRepository.PublishShiftsForDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("publishing shifts failed: %w", err)
	}

	log.Info().Str("date", date).Int64("published", published).Msg("day schedule published")
	return published, nil
}

// LaborCost sums the cost of all shifts in the range at each profile's
// hourly rate.
func (s *scheduleService) LaborCost(ctx context.Context, fromDate, toDate string) (int64, error) {
	if fromDate == "" || toDate == "" {
		return 0, ErrInvalidDataProvided
	}

	profiles, err := s.scheduleRepository.ListProfiles(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("listing staff profiles failed: %w", err)
	}
	rates := make(map[int64]int64, len(profiles))
	for _, profile := range profiles {
		rates[profile.ProfileID] = profile.HourlyRateCents
	}

	shifts, err := s.scheduleRepository.ListShifts(ctx, 0, fromDate, toDate)
	if err != nil {
		return 0, fmt.Errorf("listing shifts failed: %w", err)
	}

	var total int64
	for _, shift := range shifts {
		total += shift.LaborCostCents(rates[shift.ProfileID])
	}

	return total, nil
}
