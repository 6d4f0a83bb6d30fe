package service

import (
	"context"
	"fmt"

	"github.com/harmonialabs/harmonia/internal/importer"
	"github.com/harmonialabs/harmonia/internal/repository"
)

type importService struct {
	appointments repository.AppointmentRepo
	settings     repository.SettingsRepo
}

func NewImportService(
	appointments repository.AppointmentRepo,
	settings repository.SettingsRepo,
) ImportService {
	return &importService{
		appointments: appointments,
		settings:     settings,
	}
}

func (s *importService) ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportScheduleFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	imported, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	for i := range imported.Appointments {
		if err := s.appointments.Create(ctx, &imported.Appointments[i]); err != nil {
			return nil, fmt.Errorf("creating appointment %d: %w", i, err)
		}
	}

	settingsUpdated := false
	if imported.Settings != nil {
		if err := s.settings.Save(ctx, *imported.Settings); err != nil {
			return nil, fmt.Errorf("saving settings: %w", err)
		}
		settingsUpdated = true
	}

	return &ImportResult{
		AppointmentCount: len(imported.Appointments),
		SettingsUpdated:  settingsUpdated,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
