package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/engine"
	"github.com/harmonialabs/harmonia/internal/repository"
)

type analyticsService struct {
	appointments repository.AppointmentRepo
	settings     repository.SettingsRepo
	thresholds   engine.Thresholds
	now          func() time.Time
}

// NewAnalyticsService wires the engine to the stored schedule and profile.
func NewAnalyticsService(
	appointments repository.AppointmentRepo,
	settings repository.SettingsRepo,
	thresholds engine.Thresholds,
) AnalyticsService {
	return &analyticsService{
		appointments: appointments,
		settings:     settings,
		thresholds:   thresholds,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// buildEngine loads the settings snapshot and the full appointment list.
func (s *analyticsService) buildEngine(ctx context.Context) (*engine.Engine, []domain.Appointment, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading appointments: %w", err)
	}
	return engine.New(s.thresholds, settings), appts, nil
}

// WeeklyScore is the one entry point with a fallback guard: dashboard
// callers always receive a well-formed result, even on a logic fault deep
// in the pipeline. Repository errors still surface normally.
func (s *analyticsService) WeeklyScore(ctx context.Context, req contract.WeeklyScoreRequest) (res *contract.WeeklyScoreResult, err error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}

	if req.Now == nil {
		now := s.now()
		req.Now = &now
	}

	defer func() {
		if r := recover(); r != nil {
			fallback := engine.FallbackWeeklyScore(*req.Now)
			res, err = &fallback, nil
		}
	}()

	result := eng.WeeklyScore(appts, req)
	return &result, nil
}

func (s *analyticsService) DailyScore(ctx context.Context, date time.Time) (*contract.DailyScoreResult, error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}
	result := eng.DailyScore(date, appts)
	return &result, nil
}

func (s *analyticsService) PredictOverload(ctx context.Context, horizonDays int) (*contract.OverloadForecast, error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}
	forecast := eng.PredictOverload(appts, horizonDays, s.now())
	return &forecast, nil
}

func (s *analyticsService) CriticalDays(ctx context.Context) ([]contract.CriticalDay, error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}
	return eng.DetectCriticalDays(appts), nil
}

func (s *analyticsService) SuggestBlocks(ctx context.Context) (*contract.BlockSuggestionSet, error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}
	set := eng.SuggestBlocks(appts)
	return &set, nil
}

func (s *analyticsService) RecoveryRecommendation(ctx context.Context) (*contract.RecoveryRecommendation, error) {
	eng, appts, err := s.buildEngine(ctx)
	if err != nil {
		return nil, err
	}
	rec := eng.RecoveryRecommendation(appts)
	return &rec, nil
}
