package service

import (
	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// ExercisePerformance is a just-finished result being tested against
// the record history. Nil fields were not measured.
type ExercisePerformance struct {
	WeightKg    *float64
	Reps        *int
	DurationMin *int
	DistanceKm  *float64
}

// IsNewRecord reports whether the candidate strictly beats every prior
// record for the named exercise. Strength scores weight x reps. Cardio
// compares distance against the best prior distance when the candidate
// was measured by distance, otherwise duration against the best prior
// duration; the two metrics are never scored against each other.
func IsNewRecord(exerciseName string, typ model.WorkoutType, candidate ExercisePerformance, prior []model.PersonalRecord) bool {
	matching := make([]model.PersonalRecord, 0)
	for _, record := range prior {
		if record.ExerciseName == exerciseName && record.Type == typ {
			matching = append(matching, record)
		}
	}
	if len(matching) == 0 {
		return true
	}

	if typ == model.WorkoutStrength {
		best := 0.0
		for _, record := range matching {
			if score := strengthScore(record.WeightKg, record.Reps); score > best {
				best = score
			}
		}
		return strengthScore(candidate.WeightKg, candidate.Reps) > best
	}

	if candidate.DistanceKm != nil {
		best := 0.0
		for _, record := range matching {
			if record.DistanceKm != nil && *record.DistanceKm > best {
				best = *record.DistanceKm
			}
		}
		return *candidate.DistanceKm > best
	}

	best := 0
	for _, record := range matching {
		if record.DurationMin != nil && *record.DurationMin > best {
			best = *record.DurationMin
		}
	}
	return intOrZero(candidate.DurationMin) > best
}

// AppendRecord returns a new list with the record appended; the prior
// list is never mutated.
func AppendRecord(records []model.PersonalRecord, record model.PersonalRecord) []model.PersonalRecord {
	out := make([]model.PersonalRecord, 0, len(records)+1)
	out = append(out, records...)
	return append(out, record)
}

// BestRecord returns the strongest prior record for display, or nil.
func BestRecord(exerciseName string, typ model.WorkoutType, records []model.PersonalRecord) *model.PersonalRecord {
	var best *model.PersonalRecord
	for i := range records {
		record := &records[i]
		if record.ExerciseName != exerciseName || record.Type != typ {
			continue
		}
		if best == nil {
			best = record
			continue
		}
		if typ == model.WorkoutStrength {
			if strengthScore(record.WeightKg, record.Reps) > strengthScore(best.WeightKg, best.Reps) {
				best = record
			}
			continue
		}
		if record.DistanceKm != nil && best.DistanceKm != nil {
			if *record.DistanceKm > *best.DistanceKm {
				best = record
			}
		} else if intOrZero(record.DurationMin) > intOrZero(best.DurationMin) {
			best = record
		}
	}
	return best
}

// Missing weight scores 0; missing reps scores as a single rep.
func strengthScore(weightKg *float64, reps *int) float64 {
	weight := 0.0
	if weightKg != nil {
		weight = *weightKg
	}
	repCount := 1
	if reps != nil {
		repCount = *reps
	}
	return weight * float64(repCount)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
