package service

import (
	"strings"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// Subscribe activates the mock trainer paywall. No payment processor
// is involved; the state is a plain per-user record.
func Subscribe(store *KeyedStore, userID, plan string, now time.Time) (*model.Subscription, error) {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		plan = "monthly"
	}
	sub := model.Subscription{
		Active:    true,
		Plan:      plan,
		StartedAt: dayString(now),
	}
	if err := store.Set(userID, keySubscription, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func CancelSubscription(store *KeyedStore, userID string) error {
	return store.Set(userID, keySubscription, model.Subscription{})
}

func SubscriptionFor(store *KeyedStore, userID string) (model.Subscription, error) {
	var sub model.Subscription
	if err := store.Get(userID, keySubscription, &sub); err != nil {
		return model.Subscription{}, err
	}
	return sub, nil
}

// IsSubscribed gates trainer plan generation.
func IsSubscribed(store *KeyedStore, userID string) (bool, error) {
	sub, err := SubscriptionFor(store, userID)
	if err != nil {
		return false, err
	}
	return sub.Active, nil
}
