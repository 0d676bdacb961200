package services

import (
	"context"
	"log/slog"
	"time"

	"renalog/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	dashboardSourceTimeout   = 3 * time.Second
	dashboardReminderLimit   = 5
	dashboardAppointmentCap  = 3
	dashboardSessionLookback = 30
)

const (
	SectionStats        = "stats"
	SectionAlerts       = "alerts"
	SectionReminders    = "reminders"
	SectionAppointments = "appointments"
	SectionMeals        = "meals"
)

// DashboardReader is the data surface the overview fans out across. Every
// method honors its context so a slow source can be abandoned on timeout.
type DashboardReader interface {
	FluidsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.FluidEntry, error)
	LatestWeight(ctx context.Context, userID uint) (models.WeightEntry, bool, error)
	SessionsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.DialysisSession, error)
	UnacknowledgedAlerts(ctx context.Context, userID uint) ([]models.Alert, error)
	UpcomingReminders(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Reminder, error)
	UpcomingAppointments(ctx context.Context, userID uint, after time.Time, limit int) ([]models.Appointment, error)
	MealsSince(ctx context.Context, userID uint, cutoff time.Time) ([]models.MealEntry, error)
}

// DashboardStats carries the derived numbers the dashboard header shows.
type DashboardStats struct {
	FluidIntakeTodayML   int        `json:"fluidIntakeTodayMl"`
	DailyFluidLimitML    int        `json:"dailyFluidLimitMl"`
	FluidUsedPercent     int        `json:"fluidUsedPercent"`
	LatestWeightKg       float64    `json:"latestWeightKg"`
	DryWeightGoalKg      float64    `json:"dryWeightGoalKg"`
	WeightDeltaKg        float64    `json:"weightDeltaKg"`
	SessionsLast30Days   int        `json:"sessionsLast30Days"`
	LastSessionAt        *time.Time `json:"lastSessionAt,omitempty"`
	DaysSinceLastSession int        `json:"daysSinceLastSession"`
}

// DashboardOverview aggregates every dashboard section. Sections that failed
// to load keep their zero value and are listed in Degraded so the UI can show
// an explicit indicator instead of silently missing data.
type DashboardOverview struct {
	Stats        DashboardStats       `json:"stats"`
	Alerts       []models.Alert       `json:"alerts"`
	Reminders    []models.Reminder    `json:"reminders"`
	Appointments []models.Appointment `json:"appointments"`
	Meals        []models.MealEntry   `json:"meals"`
	Degraded     []string             `json:"degraded"`
}

type DashboardService struct {
	reader   DashboardReader
	location *time.Location
}

func NewDashboardService(reader DashboardReader, location *time.Location) *DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardService{reader: reader, location: location}
}

// Overview loads every dashboard section concurrently. Each source is awaited
// independently with its own timeout; one failing source degrades its section
// to a default value and never blocks or fails the others.
func (service *DashboardService) Overview(ctx context.Context, user *models.User, now time.Time) DashboardOverview {
	overview := DashboardOverview{
		Alerts:       make([]models.Alert, 0),
		Reminders:    make([]models.Reminder, 0),
		Appointments: make([]models.Appointment, 0),
		Meals:        make([]models.MealEntry, 0),
		Degraded:     make([]string, 0),
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, service.location)
	degraded := make(chan string, 5)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(service.section(groupCtx, degraded, SectionStats, func(sectionCtx context.Context) error {
		stats, err := service.buildStats(sectionCtx, user, now, dayStart)
		if err != nil {
			return err
		}
		overview.Stats = stats
		return nil
	}))

	group.Go(service.section(groupCtx, degraded, SectionAlerts, func(sectionCtx context.Context) error {
		alerts, err := service.reader.UnacknowledgedAlerts(sectionCtx, user.ID)
		if err != nil {
			return err
		}
		overview.Alerts = alerts
		return nil
	}))

	group.Go(service.section(groupCtx, degraded, SectionReminders, func(sectionCtx context.Context) error {
		reminders, err := service.reader.UpcomingReminders(sectionCtx, user.ID, now, dashboardReminderLimit)
		if err != nil {
			return err
		}
		overview.Reminders = reminders
		return nil
	}))

	group.Go(service.section(groupCtx, degraded, SectionAppointments, func(sectionCtx context.Context) error {
		appointments, err := service.reader.UpcomingAppointments(sectionCtx, user.ID, now, dashboardAppointmentCap)
		if err != nil {
			return err
		}
		overview.Appointments = appointments
		return nil
	}))

	group.Go(service.section(groupCtx, degraded, SectionMeals, func(sectionCtx context.Context) error {
		meals, err := service.reader.MealsSince(sectionCtx, user.ID, dayStart)
		if err != nil {
			return err
		}
		overview.Meals = meals
		return nil
	}))

	group.Wait()
	close(degraded)
	for section := range degraded {
		overview.Degraded = append(overview.Degraded, section)
	}

	// The zero-value stats section still reflects the profile limits.
	if overview.Stats.DailyFluidLimitML == 0 {
		overview.Stats.DailyFluidLimitML = user.DailyFluidLimitML
		overview.Stats.DryWeightGoalKg = user.DryWeightGoalKg
	}

	return overview
}

// section wraps one fan-out task in a bounded timeout and a fallback: the
// returned closure never propagates an error, it records the section name.
func (service *DashboardService) section(ctx context.Context, degraded chan<- string, name string, load func(context.Context) error) func() error {
	return func() error {
		sectionCtx, cancel := context.WithTimeout(ctx, dashboardSourceTimeout)
		defer cancel()

		if err := load(sectionCtx); err != nil {
			slog.Warn("dashboard section degraded", "section", name, "error", err)
			degraded <- name
		}
		return nil
	}
}

func (service *DashboardService) buildStats(ctx context.Context, user *models.User, now time.Time, dayStart time.Time) (DashboardStats, error) {
	stats := DashboardStats{
		DailyFluidLimitML: user.DailyFluidLimitML,
		DryWeightGoalKg:   user.DryWeightGoalKg,
	}

	fluids, err := service.reader.FluidsSince(ctx, user.ID, dayStart)
	if err != nil {
		return DashboardStats{}, err
	}
	for _, entry := range fluids {
		stats.FluidIntakeTodayML += entry.VolumeML
	}
	if stats.DailyFluidLimitML > 0 {
		stats.FluidUsedPercent = stats.FluidIntakeTodayML * 100 / stats.DailyFluidLimitML
	}

	latestWeight, found, err := service.reader.LatestWeight(ctx, user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	if found {
		stats.LatestWeightKg = latestWeight.WeightKg
		if stats.DryWeightGoalKg > 0 {
			stats.WeightDeltaKg = latestWeight.WeightKg - stats.DryWeightGoalKg
		}
	}

	sessions, err := service.reader.SessionsSince(ctx, user.ID, now.AddDate(0, 0, -dashboardSessionLookback))
	if err != nil {
		return DashboardStats{}, err
	}
	stats.SessionsLast30Days = len(sessions)
	if len(sessions) > 0 {
		last := sessions[0].RecordedAt
		for _, session := range sessions[1:] {
			if session.RecordedAt.After(last) {
				last = session.RecordedAt
			}
		}
		stats.LastSessionAt = &last
		stats.DaysSinceLastSession = int(now.Sub(last).Hours() / 24)
	}

	return stats, nil
}
