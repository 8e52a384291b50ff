package service

import (
	"database/sql"
	"encoding/json"
)

// Store keys, one per tracked collection or settings record.
const (
	keyProfile         = "profile"
	keyFoodLog         = "foodLog"
	keyWorkouts        = "workouts"
	keyActiveWorkout   = "activeWorkout"
	keyPersonalRecords = "personalRecords"
	keyRecentExercises = "recentExercises"
	keyDailyStats      = "dailyStats"
	keyDailyMacros     = "dailyMacros"
	keyMacroGoals      = "macroGoals"
	keyWeightGoal      = "weightGoal"
	keyWeightHistory   = "weightHistory"
	keySubscription    = "subscription"
)

// GlobalNamespace is the user id used for state not owned by any account.
const GlobalNamespace = ""

// KeyedStore persists JSON values namespaced by user id, so no entity
// is ever visible across accounts. There are no transactional
// guarantees across keys; related updates are independent writes.
type KeyedStore struct {
	db *sql.DB
}

func NewKeyedStore(db *sql.DB) *KeyedStore {
	return &KeyedStore{db: db}
}

// Get unmarshals the value stored under (userID, key) into out. When
// the key is absent, or the stored value no longer parses, out is left
// untouched so the caller keeps its default.
func (s *KeyedStore) Get(userID, key string, out any) error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM user_store WHERE user_id = ? AND key = ?`, userID, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return &StorageError{Op: "read", Key: key, Err: err}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Corrupt value: fall back to the caller's default.
		return nil
	}
	return nil
}

func (s *KeyedStore) Set(userID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	_, err = s.db.Exec(`
INSERT INTO user_store(user_id, key, value, updated_at)
VALUES(?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, userID, key, string(raw))
	if err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

func (s *KeyedStore) Delete(userID, key string) error {
	if _, err := s.db.Exec(`DELETE FROM user_store WHERE user_id = ? AND key = ?`, userID, key); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
