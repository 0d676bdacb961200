package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"renalog/internal/models"
)

// stubDashboardReader serves canned sections and can fail selected ones.
type stubDashboardReader struct {
	fluids       []models.FluidEntry
	latestWeight *models.WeightEntry
	sessions     []models.DialysisSession
	alerts       []models.Alert
	reminders    []models.Reminder
	appointments []models.Appointment
	meals        []models.MealEntry

	failAlerts bool
	failStats  bool
	block      time.Duration
}

func (reader *stubDashboardReader) wait(ctx context.Context) error {
	if reader.block <= 0 {
		return nil
	}
	select {
	case <-time.After(reader.block):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (reader *stubDashboardReader) FluidsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.FluidEntry, error) {
	if reader.failStats {
		return nil, errors.New("fluids unavailable")
	}
	if err := reader.wait(ctx); err != nil {
		return nil, err
	}
	return reader.fluids, nil
}

func (reader *stubDashboardReader) LatestWeight(ctx context.Context, userID uint) (models.WeightEntry, bool, error) {
	if reader.latestWeight == nil {
		return models.WeightEntry{}, false, nil
	}
	return *reader.latestWeight, true, nil
}

func (reader *stubDashboardReader) SessionsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.DialysisSession, error) {
	return reader.sessions, nil
}

func (reader *stubDashboardReader) UnacknowledgedAlerts(ctx context.Context, userID uint) ([]models.Alert, error) {
	if reader.failAlerts {
		return nil, errors.New("alerts unavailable")
	}
	return reader.alerts, nil
}

func (reader *stubDashboardReader) UpcomingReminders(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Reminder, error) {
	if limit < len(reader.reminders) {
		return reader.reminders[:limit], nil
	}
	return reader.reminders, nil
}

func (reader *stubDashboardReader) UpcomingAppointments(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Appointment, error) {
	if limit < len(reader.appointments) {
		return reader.appointments[:limit], nil
	}
	return reader.appointments, nil
}

func (reader *stubDashboardReader) MealsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.MealEntry, error) {
	return reader.meals, nil
}

func TestDashboardOverview(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 0, 0, 0, time.UTC)
	user := &models.User{ID: 7, DryWeightGoalKg: 62.0, DailyFluidLimitML: 1500}

	t.Run("stats derive from the loaded records", func(t *testing.T) {
		lastSession := now.AddDate(0, 0, -2)
		reader := &stubDashboardReader{
			fluids: []models.FluidEntry{
				{RecordedAt: now.Add(-2 * time.Hour), VolumeML: 400},
				{RecordedAt: now.Add(-5 * time.Hour), VolumeML: 350},
			},
			latestWeight: &models.WeightEntry{RecordedAt: now.Add(-20 * time.Hour), WeightKg: 63.5},
			sessions: []models.DialysisSession{
				{RecordedAt: now.AddDate(0, 0, -9)},
				{RecordedAt: lastSession},
				{RecordedAt: now.AddDate(0, 0, -5)},
			},
			alerts: []models.Alert{{UserID: 7, Message: "High fluid intake"}},
		}
		service := NewDashboardService(reader, time.UTC)

		overview := service.Overview(context.Background(), user, now)

		if len(overview.Degraded) != 0 {
			t.Fatalf("degraded = %v, want none", overview.Degraded)
		}
		stats := overview.Stats
		if stats.FluidIntakeTodayML != 750 {
			t.Errorf("fluid intake = %d, want 750", stats.FluidIntakeTodayML)
		}
		if stats.FluidUsedPercent != 50 {
			t.Errorf("fluid percent = %d, want 50", stats.FluidUsedPercent)
		}
		if stats.LatestWeightKg != 63.5 || stats.WeightDeltaKg != 1.5 {
			t.Errorf("weight stats = %+v", stats)
		}
		if stats.SessionsLast30Days != 3 {
			t.Errorf("sessions = %d, want 3", stats.SessionsLast30Days)
		}
		if stats.LastSessionAt == nil || !stats.LastSessionAt.Equal(lastSession) {
			t.Errorf("last session = %v, want %v", stats.LastSessionAt, lastSession)
		}
		if stats.DaysSinceLastSession != 2 {
			t.Errorf("days since last session = %d, want 2", stats.DaysSinceLastSession)
		}
		if len(overview.Alerts) != 1 {
			t.Errorf("alerts = %v", overview.Alerts)
		}
	})

	t.Run("one failing source degrades its section only", func(t *testing.T) {
		reader := &stubDashboardReader{
			failAlerts: true,
			reminders:  []models.Reminder{{UserID: 7, Title: "Take phosphate binder"}},
		}
		service := NewDashboardService(reader, time.UTC)

		overview := service.Overview(context.Background(), user, now)

		if len(overview.Degraded) != 1 || overview.Degraded[0] != SectionAlerts {
			t.Fatalf("degraded = %v, want [alerts]", overview.Degraded)
		}
		if overview.Alerts == nil || len(overview.Alerts) != 0 {
			t.Errorf("alerts = %v, want empty default", overview.Alerts)
		}
		if len(overview.Reminders) != 1 {
			t.Errorf("healthy reminders section lost: %v", overview.Reminders)
		}
	})

	t.Run("failing stats still reports the profile limits", func(t *testing.T) {
		reader := &stubDashboardReader{failStats: true}
		service := NewDashboardService(reader, time.UTC)

		overview := service.Overview(context.Background(), user, now)

		if len(overview.Degraded) != 1 || overview.Degraded[0] != SectionStats {
			t.Fatalf("degraded = %v, want [stats]", overview.Degraded)
		}
		if overview.Stats.DailyFluidLimitML != 1500 || overview.Stats.DryWeightGoalKg != 62.0 {
			t.Errorf("fallback stats = %+v", overview.Stats)
		}
	})

	t.Run("reminder and appointment limits are applied", func(t *testing.T) {
		reader := &stubDashboardReader{
			reminders: []models.Reminder{
				{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}, {Title: "e"}, {Title: "f"},
			},
			appointments: []models.Appointment{
				{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"},
			},
		}
		service := NewDashboardService(reader, time.UTC)

		overview := service.Overview(context.Background(), user, now)

		if len(overview.Reminders) != dashboardReminderLimit {
			t.Errorf("reminders = %d, want %d", len(overview.Reminders), dashboardReminderLimit)
		}
		if len(overview.Appointments) != dashboardAppointmentCap {
			t.Errorf("appointments = %d, want %d", len(overview.Appointments), dashboardAppointmentCap)
		}
	})

	t.Run("cancelled context degrades the slow section", func(t *testing.T) {
		reader := &stubDashboardReader{block: 100 * time.Millisecond}
		service := NewDashboardService(reader, time.UTC)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		overview := service.Overview(ctx, user, now)
		found := false
		for _, section := range overview.Degraded {
			if section == SectionStats {
				found = true
			}
		}
		if !found {
			t.Errorf("degraded = %v, want stats included", overview.Degraded)
		}
	})
}
