package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

const appointmentColumns = `id, start_at, end_at, type, status, client_name, notes, created_at, updated_at`

// SQLiteAppointmentRepo implements AppointmentRepo using a SQLite database.
type SQLiteAppointmentRepo struct {
	db *sql.DB
}

// NewSQLiteAppointmentRepo creates a new SQLiteAppointmentRepo.
func NewSQLiteAppointmentRepo(db *sql.DB) *SQLiteAppointmentRepo {
	return &SQLiteAppointmentRepo{db: db}
}

func (r *SQLiteAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	query := `INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Start.Format(time.RFC3339),
		a.End.Format(time.RFC3339),
		string(a.Type),
		string(a.Status),
		a.ClientName,
		a.Notes,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := scanAppointment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAppointmentRepo) List(ctx context.Context) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *SQLiteAppointmentRepo) ListByRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE start_at >= ? AND start_at <= ?
		ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query,
		start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing appointments by range: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *SQLiteAppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	query := `UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM appointments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	return nil
}

// scanAppointment scans one appointment row via the given scan function.
func scanAppointment(scan func(...any) error) (*domain.Appointment, error) {
	var a domain.Appointment
	var startStr, endStr, typeStr, statusStr, createdStr, updatedStr string

	if err := scan(
		&a.ID, &startStr, &endStr, &typeStr, &statusStr,
		&a.ClientName, &a.Notes, &createdStr, &updatedStr,
	); err != nil {
		return nil, err
	}

	var parseErr error
	a.Start, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_at: %w", parseErr)
	}
	a.End, parseErr = time.Parse(time.RFC3339, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_at: %w", parseErr)
	}
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	a.Type = domain.AppointmentType(typeStr)
	a.Status = domain.AppointmentStatus(statusStr)
	return &a, nil
}

// collectAppointments scans all remaining rows.
func collectAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment row: %w", err)
		}
		appts = append(appts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}
	return appts, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
