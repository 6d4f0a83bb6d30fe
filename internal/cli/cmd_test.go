package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonialabs/harmonia/internal/engine"
	"github.com/harmonialabs/harmonia/internal/repository"
	"github.com/harmonialabs/harmonia/internal/service"
	"github.com/harmonialabs/harmonia/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	apptRepo := repository.NewSQLiteAppointmentRepo(db)
	settingsRepo := repository.NewSQLiteSettingsRepo(db)

	return &App{
		Appointments:  service.NewAppointmentService(apptRepo),
		Settings:      service.NewSettingsService(settingsRepo),
		Analytics:     service.NewAnalyticsService(apptRepo, settingsRepo, engine.DefaultThresholds()),
		Import:        service.NewImportService(apptRepo, settingsRepo),
		HorizonDays:   7,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures everything written to stdout.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true

	var out strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&out, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return out.String(), execErr
}

func seedWeek(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	start := time.Now().Truncate(24 * time.Hour).Add(9 * time.Hour)
	for _, a := range testutil.Week(start, 3, 9, 4, 50, 30) {
		_, err := app.Appointments.Add(ctx, service.AddAppointmentRequest{Start: a.Start, End: a.End})
		require.NoError(t, err)
	}
}

func TestScoreCmd(t *testing.T) {
	app := testApp(t)
	seedWeek(t, app)

	out, err := executeCmd(t, app, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "Harmony Score")
}

func TestScoreCmd_WeekFlag(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "score", "--week", "2025-06-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Harmony Score: 100")
}

func TestScoreCmd_BadWeekFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "score", "--week", "not a date at all xyz")
	assert.Error(t, err)
}

func TestParseDateFlag(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	got, err := parseDateFlag("2025-06-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDateFlag("next monday", now)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.True(t, got.After(now))

	// Unmatched input comes back from the natural-language parser as the
	// base time instead of an error; it must still be rejected.
	_, err = parseDateFlag("not a date at all xyz", now)
	assert.Error(t, err)
}

func TestDailyCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "daily", "--date", "2025-06-02")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-02")
	assert.Contains(t, out, "score 100")
}

func TestPredictCmd(t *testing.T) {
	app := testApp(t)
	seedWeek(t, app)

	out, err := executeCmd(t, app, "predict", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Next 3 days")
}

func TestCriticalCmd_EmptySchedule(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "No critical days")
}

func TestBlocksCmd_EmptySchedule(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "blocks")
	require.NoError(t, err)
	assert.Contains(t, out, "No blocks needed")
}

func TestRecoveryCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "recovery")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended")
}

func TestAppointmentAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "appointment", "add",
		"--start", "2025-06-02 09:00", "--duration", "45", "--client", "Alex")
	require.NoError(t, err)
	assert.Contains(t, out, "Added appointment")

	out, err = executeCmd(t, app, "appointment", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "45m")
}

func TestAppointmentCancel_ByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	created, err := app.Appointments.Add(ctx, service.AddAppointmentRequest{
		Start: start, End: start.Add(30 * time.Minute),
	})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "appointment", "cancel", created.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
}

func TestAppointmentCancel_NotFound(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "appointment", "cancel", "ffffffff")
	assert.Error(t, err)
}

func TestSettingsShowAndSet(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "08:00–18:00")

	out, err = executeCmd(t, app, "settings", "set", "--work-start", "7", "--max-weekly", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "07:00–18:00")
	assert.Contains(t, out, "45h")
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)

	path := t.TempDir() + "/schedule.json"
	content := `{
  "appointments": [
    {"start": "2025-06-02T09:00:00Z", "end": "2025-06-02T10:00:00Z"},
    {"start": "2025-06-02T10:30:00Z", "end": "2025-06-02T11:15:00Z", "client_name": "Sam"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 appointments")

	out, err = executeCmd(t, app, "appointment", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sam")
}

func TestDashboardCmd_NonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
