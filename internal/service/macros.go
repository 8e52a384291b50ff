package service

import (
	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

var defaultMacroGoals = model.MacroGoals{Protein: 150, Carbs: 200, Fat: 70}

func SetMacroGoals(store *KeyedStore, userID string, goals model.MacroGoals) error {
	if err := validateNonNegativeFloat("protein", goals.Protein); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", goals.Carbs); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", goals.Fat); err != nil {
		return err
	}
	return store.Set(userID, keyMacroGoals, goals)
}

func MacroGoalsFor(store *KeyedStore, userID string) (model.MacroGoals, error) {
	goals := defaultMacroGoals
	if err := store.Get(userID, keyMacroGoals, &goals); err != nil {
		return defaultMacroGoals, err
	}
	return goals, nil
}
