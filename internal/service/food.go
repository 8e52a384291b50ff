package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

type FoodLogInput struct {
	Name     string
	Calories int
	Quantity float64
	Unit     string
	Protein  float64
	Carbs    float64
	Fat      float64
	Date     string // YYYY-MM-DD, defaults to today
}

// LogFood appends an immutable entry to the food log and refreshes
// today's totals from the updated list.
func LogFood(store *KeyedStore, userID string, in FoodLogInput, now time.Time) (*model.FoodItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, validationErr("food name", "is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return nil, err
	}
	if err := validateNonNegativeFloat("protein", in.Protein); err != nil {
		return nil, err
	}
	if err := validateNonNegativeFloat("carbs", in.Carbs); err != nil {
		return nil, err
	}
	if err := validateNonNegativeFloat("fat", in.Fat); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		in.Quantity = 100
	}
	if strings.TrimSpace(in.Unit) == "" {
		in.Unit = "g"
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = dayString(now)
	} else if _, err := parseDay(in.Date); err != nil {
		return nil, err
	}

	item := model.FoodItem{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Calories: in.Calories,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Date:     in.Date,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}

	entries, err := FoodLogEntries(store, userID)
	if err != nil {
		return nil, err
	}
	entries = append(entries, item)
	if err := store.Set(userID, keyFoodLog, entries); err != nil {
		return nil, err
	}
	if err := refreshDaily(store, userID, now); err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteFood(store *KeyedStore, userID, id string, now time.Time) error {
	entries, err := FoodLogEntries(store, userID)
	if err != nil {
		return err
	}

	kept := make([]model.FoodItem, 0, len(entries))
	found := false
	for _, entry := range entries {
		if entry.ID == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return validationErr("food id", "not found")
	}

	if err := store.Set(userID, keyFoodLog, kept); err != nil {
		return err
	}
	return refreshDaily(store, userID, now)
}

func FoodLogEntries(store *KeyedStore, userID string) ([]model.FoodItem, error) {
	entries := []model.FoodItem{}
	if err := store.Get(userID, keyFoodLog, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func TodayFoods(store *KeyedStore, userID string, now time.Time) ([]model.FoodItem, error) {
	entries, err := FoodLogEntries(store, userID)
	if err != nil {
		return nil, err
	}
	today := dayString(now)
	todays := make([]model.FoodItem, 0)
	for _, entry := range entries {
		if entry.Date == today {
			todays = append(todays, entry)
		}
	}
	return todays, nil
}
