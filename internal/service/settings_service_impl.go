package service

import (
	"context"
	"fmt"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

// NewSettingsService creates the profile settings service.
func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, in domain.Settings) error {
	if in.WorkDayStartHour < 0 || in.WorkDayStartHour > 23 ||
		in.WorkDayEndHour < 0 || in.WorkDayEndHour > 24 {
		return fmt.Errorf("workday hours out of range")
	}
	if in.WorkDayEndHour != 0 && in.WorkDayStartHour >= in.WorkDayEndHour {
		return fmt.Errorf("workday start must precede end")
	}
	if in.BreakDurationMin < 0 || in.MaxDailyAppointments < 0 || in.MaxWeeklyHours < 0 {
		return fmt.Errorf("settings values must not be negative")
	}
	return s.settings.Save(ctx, in.Normalize())
}
