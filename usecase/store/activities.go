package store

import (
	"context"
	"sort"
	"strings"

	"github.com/fastygo/furnish/domain"
)

func (s *Store) AddActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = s.now()
	}
	return add(ctx, s, &s.activities, activity, func(a *domain.Activity, id string) { a.ID = id })
}

func (s *Store) UpdateActivity(ctx context.Context, id string, patch domain.ActivityPatch) (domain.Activity, bool, error) {
	return update(ctx, s, &s.activities, id, patch)
}

func (s *Store) DeleteActivity(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.activities, id)
}

func (s *Store) GetActivity(id string) (domain.Activity, bool) {
	return get(s, &s.activities, id)
}

func (s *Store) ListActivities() []domain.Activity {
	return list(s, &s.activities)
}

// ActivitiesByApartment returns the apartment's trail, newest first.
func (s *Store) ActivitiesByApartment(apartmentID string) []domain.Activity {
	out := filter(s, &s.activities, func(a domain.Activity) bool {
		return a.ApartmentID == apartmentID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *Store) ActivitiesByType(activityType string) []domain.Activity {
	return filter(s, &s.activities, func(a domain.Activity) bool {
		return strings.EqualFold(string(a.Type), activityType)
	})
}
