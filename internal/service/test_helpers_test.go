package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/lukejerome/viligant-tracker-dk/internal/db"
	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viligant.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestStore(t *testing.T) (*sql.DB, *service.KeyedStore) {
	t.Helper()
	sqldb := newTestDB(t)
	return sqldb, service.NewKeyedStore(sqldb)
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		HeightCm:           180,
		CurrentWeightKg:    85,
		GoalWeightKg:       78,
		Age:                30,
		Sex:                model.SexMale,
		WorkoutDaysPerWeek: 4,
		ActivityLevel:      model.ActivityModerate,
		Goal:               model.GoalLose,
		TargetDate:         "2027-01-01",
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
