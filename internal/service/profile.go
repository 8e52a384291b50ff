package service

import (
	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// SaveProfile replaces the stored profile wholesale.
func SaveProfile(store *KeyedStore, userID string, p model.UserProfile) error {
	if err := ValidateProfile(p); err != nil {
		return err
	}
	return store.Set(userID, keyProfile, p)
}

// ProfileFor returns the stored profile, or nil when none was saved.
func ProfileFor(store *KeyedStore, userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := store.Get(userID, keyProfile, &p); err != nil {
		return nil, err
	}
	if p == (model.UserProfile{}) {
		return nil, nil
	}
	return &p, nil
}
