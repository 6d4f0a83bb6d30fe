package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single-row settings
// table seeded by the migrations.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	query := `SELECT work_day_start_hour, work_day_end_hour, break_duration_min,
		max_daily_appointments, max_weekly_hours
		FROM settings WHERE id = 1`

	var s domain.Settings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.WorkDayStartHour,
		&s.WorkDayEndHour,
		&s.BreakDurationMin,
		&s.MaxDailyAppointments,
		&s.MaxWeeklyHours,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s.Normalize(), nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	s = s.Normalize()
	query := `UPDATE settings SET
		work_day_start_hour = ?,
		work_day_end_hour = ?,
		break_duration_min = ?,
		max_daily_appointments = ?,
		max_weekly_hours = ?
		WHERE id = 1`
	_, err := r.db.ExecContext(ctx, query,
		s.WorkDayStartHour,
		s.WorkDayEndHour,
		s.BreakDurationMin,
		s.MaxDailyAppointments,
		s.MaxWeeklyHours,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
