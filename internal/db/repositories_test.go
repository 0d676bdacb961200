package db

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"renalog/internal/models"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return NewRepositories(database)
}

func seedUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         models.RolePatient,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	repos := openTestDB(t)
	user := seedUser(t, repos, "ana@example.com")

	t.Run("lookup normalizes the email", func(t *testing.T) {
		found, err := repos.Users.FindByNormalizedEmail("  ANA@example.com ")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("found id = %d, want %d", found.ID, user.ID)
		}

		exists, err := repos.Users.ExistsByNormalizedEmail("Ana@Example.COM")
		if err != nil || !exists {
			t.Errorf("exists = %v (%v), want true", exists, err)
		}
	})

	t.Run("unknown email errors", func(t *testing.T) {
		if _, err := repos.Users.FindByNormalizedEmail("nobody@example.com"); err == nil {
			t.Error("expected error for unknown email")
		}
	})
}

func TestRecordRepository(t *testing.T) {
	repos := openTestDB(t)
	owner := seedUser(t, repos, "owner@example.com")
	stranger := seedUser(t, repos, "stranger@example.com")
	now := time.Now().UTC().Truncate(time.Second)

	for _, daysAgo := range []int{1, 10, 40} {
		entry := models.WeightEntry{
			UserID:     owner.ID,
			RecordedAt: now.AddDate(0, 0, -daysAgo),
			WeightKg:   60 + float64(daysAgo),
		}
		if err := repos.Weights.Create(&entry); err != nil {
			t.Fatalf("create weight: %v", err)
		}
	}

	t.Run("ListByUser orders most recent first", func(t *testing.T) {
		entries, err := repos.Weights.ListByUser(owner.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("entries = %d, want 3", len(entries))
		}
		weights := []float64{entries[0].WeightKg, entries[1].WeightKg, entries[2].WeightKg}
		if !reflect.DeepEqual(weights, []float64{61, 70, 100}) {
			t.Errorf("order = %v", weights)
		}
	})

	t.Run("ListSince is strict about the cutoff", func(t *testing.T) {
		cutoff := now.AddDate(0, 0, -10)
		entries, err := repos.Weights.ListSince(owner.ID, cutoff)
		if err != nil {
			t.Fatalf("list since: %v", err)
		}
		// The entry recorded exactly at the cutoff stays out.
		if len(entries) != 1 || entries[0].WeightKg != 61 {
			t.Errorf("entries = %+v, want only the 1-day-old record", entries)
		}
	})

	t.Run("strangers see nothing and delete nothing", func(t *testing.T) {
		entries, err := repos.Weights.ListByUser(stranger.ID)
		if err != nil || len(entries) != 0 {
			t.Errorf("stranger list = %v (%v)", entries, err)
		}

		owned, err := repos.Weights.ListByUser(owner.ID)
		if err != nil || len(owned) == 0 {
			t.Fatalf("owner list failed: %v", err)
		}
		deleted, err := repos.Weights.DeleteByIDForUser(stranger.ID, owned[0].ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if deleted {
			t.Error("stranger deleted another user's record")
		}
	})

	t.Run("owner delete removes the record", func(t *testing.T) {
		owned, err := repos.Weights.ListByUser(owner.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		deleted, err := repos.Weights.DeleteByIDForUser(owner.ID, owned[0].ID)
		if err != nil || !deleted {
			t.Fatalf("delete = %v (%v), want true", deleted, err)
		}
		remaining, _ := repos.Weights.ListByUser(owner.ID)
		if len(remaining) != len(owned)-1 {
			t.Errorf("remaining = %d, want %d", len(remaining), len(owned)-1)
		}
	})
}

func TestReportConfigRepository(t *testing.T) {
	repos := openTestDB(t)
	owner := seedUser(t, repos, "owner@example.com")
	stranger := seedUser(t, repos, "stranger@example.com")

	report := models.ReportConfig{
		ID:         "abc123def456",
		UserID:     owner.ID,
		Name:       "Clinic Visit",
		Categories: []string{models.CategorySessions, models.CategoryVitals},
		RangeToken: "30days",
		CreatedAt:  time.Now().UTC(),
	}
	if err := repos.Reports.Create(&report); err != nil {
		t.Fatalf("create report: %v", err)
	}

	t.Run("categories survive the round trip", func(t *testing.T) {
		found, ok, err := repos.Reports.FindByIDForUser(owner.ID, report.ID)
		if err != nil || !ok {
			t.Fatalf("find = %v (%v)", ok, err)
		}
		if !reflect.DeepEqual(found.Categories, report.Categories) {
			t.Errorf("categories = %v, want %v", found.Categories, report.Categories)
		}
	})

	t.Run("lookups are scoped to the owner", func(t *testing.T) {
		if _, ok, err := repos.Reports.FindByIDForUser(stranger.ID, report.ID); err != nil || ok {
			t.Errorf("stranger find = %v (%v), want not found", ok, err)
		}
		if deleted, err := repos.Reports.DeleteByIDForUser(stranger.ID, report.ID); err != nil || deleted {
			t.Errorf("stranger delete = %v (%v)", deleted, err)
		}
	})

	t.Run("owner delete", func(t *testing.T) {
		deleted, err := repos.Reports.DeleteByIDForUser(owner.ID, report.ID)
		if err != nil || !deleted {
			t.Fatalf("delete = %v (%v)", deleted, err)
		}
		if _, ok, _ := repos.Reports.FindByIDForUser(owner.ID, report.ID); ok {
			t.Error("report still present after delete")
		}
	})
}

func TestDashboardReader(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	repos := NewRepositories(database)
	reader := NewDashboardReader(database)
	user := seedUser(t, repos, "dash@example.com")
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("LatestWeight reports absence without an error", func(t *testing.T) {
		_, found, err := reader.LatestWeight(ctx, user.ID)
		if err != nil {
			t.Fatalf("latest weight: %v", err)
		}
		if found {
			t.Error("found = true with no records")
		}
	})

	t.Run("LatestWeight picks the newest entry", func(t *testing.T) {
		for _, daysAgo := range []int{5, 1, 3} {
			entry := models.WeightEntry{UserID: user.ID, RecordedAt: now.AddDate(0, 0, -daysAgo), WeightKg: 60 + float64(daysAgo)}
			if err := repos.Weights.Create(&entry); err != nil {
				t.Fatalf("create weight: %v", err)
			}
		}
		entry, found, err := reader.LatestWeight(ctx, user.ID)
		if err != nil || !found {
			t.Fatalf("latest weight = %v (%v)", found, err)
		}
		if entry.WeightKg != 61 {
			t.Errorf("latest = %v, want the 1-day-old entry", entry.WeightKg)
		}
	})

	t.Run("reminders honor the done flag and limit", func(t *testing.T) {
		for hour := 1; hour <= 4; hour++ {
			reminder := models.Reminder{UserID: user.ID, Title: "binder", DueAt: now.Add(time.Duration(hour) * time.Hour)}
			if err := database.Create(&reminder).Error; err != nil {
				t.Fatalf("create reminder: %v", err)
			}
		}
		done := models.Reminder{UserID: user.ID, Title: "done", DueAt: now.Add(time.Hour), Done: true}
		if err := database.Create(&done).Error; err != nil {
			t.Fatalf("create reminder: %v", err)
		}

		reminders, err := reader.UpcomingReminders(ctx, user.ID, now, 3)
		if err != nil {
			t.Fatalf("reminders: %v", err)
		}
		if len(reminders) != 3 {
			t.Errorf("reminders = %d, want 3", len(reminders))
		}
		for _, reminder := range reminders {
			if reminder.Done {
				t.Error("done reminder returned")
			}
		}
	})

	t.Run("alerts exclude acknowledged ones", func(t *testing.T) {
		open := models.Alert{UserID: user.ID, Severity: models.AlertWarning, Message: "High fluid intake"}
		closed := models.Alert{UserID: user.ID, Severity: models.AlertInfo, Message: "Old", Acknowledged: true}
		if err := database.Create(&open).Error; err != nil {
			t.Fatalf("create alert: %v", err)
		}
		if err := database.Create(&closed).Error; err != nil {
			t.Fatalf("create alert: %v", err)
		}

		alerts, err := reader.UnacknowledgedAlerts(ctx, user.ID)
		if err != nil {
			t.Fatalf("alerts: %v", err)
		}
		if len(alerts) != 1 || alerts[0].Message != "High fluid intake" {
			t.Errorf("alerts = %+v", alerts)
		}
	})
}
