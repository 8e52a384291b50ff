package service_test

import (
	"testing"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func TestIsNewRecordFirstAttemptAlwaysCounts(t *testing.T) {
	t.Parallel()

	candidate := service.ExercisePerformance{WeightKg: floatPtr(60), Reps: intPtr(5)}
	if !service.IsNewRecord("Bench Press", model.WorkoutStrength, candidate, nil) {
		t.Fatal("first attempt at an exercise should always be a record")
	}
}

func TestIsNewRecordStrengthComparesWeightTimesReps(t *testing.T) {
	t.Parallel()

	prior := []model.PersonalRecord{
		{ExerciseName: "Squats", Type: model.WorkoutStrength, WeightKg: floatPtr(100), Reps: intPtr(5)}, // 500
		{ExerciseName: "Squats", Type: model.WorkoutStrength, WeightKg: floatPtr(80), Reps: intPtr(8)},  // 640
	}

	beats := service.ExercisePerformance{WeightKg: floatPtr(110), Reps: intPtr(6)} // 660
	if !service.IsNewRecord("Squats", model.WorkoutStrength, beats, prior) {
		t.Error("660 should beat the best prior score of 640")
	}

	ties := service.ExercisePerformance{WeightKg: floatPtr(80), Reps: intPtr(8)} // 640
	if service.IsNewRecord("Squats", model.WorkoutStrength, ties, prior) {
		t.Error("a tie is not a new record")
	}

	noWeight := service.ExercisePerformance{Reps: intPtr(100)} // missing weight scores 0
	if service.IsNewRecord("Squats", model.WorkoutStrength, noWeight, prior) {
		t.Error("bodyweight reps should not beat a weighted record")
	}
}

func TestIsNewRecordMissingRepsScoreAsSingleRep(t *testing.T) {
	t.Parallel()

	prior := []model.PersonalRecord{
		{ExerciseName: "Deadlifts", Type: model.WorkoutStrength, WeightKg: floatPtr(100), Reps: intPtr(1)},
	}
	candidate := service.ExercisePerformance{WeightKg: floatPtr(120)} // 120 x 1
	if !service.IsNewRecord("Deadlifts", model.WorkoutStrength, candidate, prior) {
		t.Fatal("120kg single should beat 100kg single")
	}
}

func TestIsNewRecordCardioComparesPerMetric(t *testing.T) {
	t.Parallel()

	prior := []model.PersonalRecord{
		{ExerciseName: "Running", Type: model.WorkoutCardio, DistanceKm: floatPtr(10), DurationMin: intPtr(55)},
		{ExerciseName: "Running", Type: model.WorkoutCardio, DurationMin: intPtr(90)},
	}

	// A distance candidate is compared against prior distances only.
	longer := service.ExercisePerformance{DistanceKm: floatPtr(12)}
	if !service.IsNewRecord("Running", model.WorkoutCardio, longer, prior) {
		t.Error("12km should beat the best prior distance of 10km")
	}
	shorter := service.ExercisePerformance{DistanceKm: floatPtr(8), DurationMin: intPtr(120)}
	if service.IsNewRecord("Running", model.WorkoutCardio, shorter, prior) {
		t.Error("8km is not a distance record even with a long duration")
	}

	// A duration-only candidate is compared against prior durations.
	longRun := service.ExercisePerformance{DurationMin: intPtr(95)}
	if !service.IsNewRecord("Running", model.WorkoutCardio, longRun, prior) {
		t.Error("95min should beat the best prior duration of 90min")
	}
}

func TestIsNewRecordScopedToExerciseAndType(t *testing.T) {
	t.Parallel()

	prior := []model.PersonalRecord{
		{ExerciseName: "Rowing", Type: model.WorkoutCardio, DurationMin: intPtr(60)},
	}
	candidate := service.ExercisePerformance{WeightKg: floatPtr(1), Reps: intPtr(1)}
	if !service.IsNewRecord("Rowing", model.WorkoutStrength, candidate, prior) {
		t.Fatal("a cardio record should not block a first strength record for the same name")
	}
}

func TestAppendRecordDoesNotMutatePrior(t *testing.T) {
	t.Parallel()

	prior := make([]model.PersonalRecord, 0, 4)
	prior = append(prior,
		model.PersonalRecord{ExerciseName: "Squats", Type: model.WorkoutStrength},
		model.PersonalRecord{ExerciseName: "Running", Type: model.WorkoutCardio},
	)

	updated := service.AppendRecord(prior, model.PersonalRecord{ExerciseName: "Plank", Type: model.WorkoutStrength})
	if len(updated) != 3 {
		t.Fatalf("updated has %d records, want 3", len(updated))
	}
	if len(prior) != 2 {
		t.Fatalf("prior list was mutated: %d records", len(prior))
	}
	updated[0].ExerciseName = "changed"
	if prior[0].ExerciseName != "Squats" {
		t.Fatal("updated list shares backing storage with prior")
	}
}

func TestBestRecordPicksHighestScore(t *testing.T) {
	t.Parallel()

	records := []model.PersonalRecord{
		{ExerciseName: "Squats", Type: model.WorkoutStrength, WeightKg: floatPtr(100), Reps: intPtr(5), Date: "2026-01-01"},
		{ExerciseName: "Squats", Type: model.WorkoutStrength, WeightKg: floatPtr(90), Reps: intPtr(8), Date: "2026-02-01"},
		{ExerciseName: "Running", Type: model.WorkoutCardio, DistanceKm: floatPtr(10)},
	}

	best := service.BestRecord("Squats", model.WorkoutStrength, records)
	if best == nil {
		t.Fatal("expected a best record")
	}
	if best.Date != "2026-02-01" {
		t.Fatalf("best = %s (score %f x %d)", best.Date, *best.WeightKg, *best.Reps)
	}
	if service.BestRecord("Burpees", model.WorkoutStrength, records) != nil {
		t.Fatal("expected nil for an exercise with no records")
	}
}
