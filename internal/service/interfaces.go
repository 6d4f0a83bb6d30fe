package service

import (
	"context"
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/importer"
)

// AnalyticsService exposes the scoring and prediction pipeline over the
// stored schedule.
type AnalyticsService interface {
	WeeklyScore(ctx context.Context, req contract.WeeklyScoreRequest) (*contract.WeeklyScoreResult, error)
	DailyScore(ctx context.Context, date time.Time) (*contract.DailyScoreResult, error)
	PredictOverload(ctx context.Context, horizonDays int) (*contract.OverloadForecast, error)
	CriticalDays(ctx context.Context) ([]contract.CriticalDay, error)
	SuggestBlocks(ctx context.Context) (*contract.BlockSuggestionSet, error)
	RecoveryRecommendation(ctx context.Context) (*contract.RecoveryRecommendation, error)
}

// AppointmentService manages the stored appointment records.
type AppointmentService interface {
	Add(ctx context.Context, req AddAppointmentRequest) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

// ImportService loads external schedule exports into the store.
type ImportService interface {
	ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error)
	ImportScheduleFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ImportResult struct {
	AppointmentCount int
	SettingsUpdated  bool
}

// SettingsService reads and updates the professional's profile.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) error
}

type AddAppointmentRequest struct {
	Start      time.Time
	End        time.Time
	Type       domain.AppointmentType
	ClientName string
	Notes      string
}
