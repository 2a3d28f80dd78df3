package store

import (
	"context"
	"sort"

	"github.com/fastygo/furnish/domain"
)

func (s *Store) AddAINote(ctx context.Context, note domain.AINote) (domain.AINote, error) {
	if note.Timestamp.IsZero() {
		note.Timestamp = s.now()
	}
	return add(ctx, s, &s.aiNotes, note, func(n *domain.AINote, id string) { n.ID = id })
}

func (s *Store) UpdateAINote(ctx context.Context, id string, patch domain.AINotePatch) (domain.AINote, bool, error) {
	return update(ctx, s, &s.aiNotes, id, patch)
}

func (s *Store) DeleteAINote(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.aiNotes, id)
}

func (s *Store) GetAINote(id string) (domain.AINote, bool) {
	return get(s, &s.aiNotes, id)
}

func (s *Store) ListAINotes() []domain.AINote {
	return list(s, &s.aiNotes)
}

// AINotesByApartment returns the apartment's notes, newest first.
func (s *Store) AINotesByApartment(apartmentID string) []domain.AINote {
	out := filter(s, &s.aiNotes, func(n domain.AINote) bool {
		return n.ApartmentID == apartmentID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// SetManualNote replaces the apartment's manual note, creating it if needed.
func (s *Store) SetManualNote(ctx context.Context, apartmentID, text string) domain.ManualNote {
	note := domain.ManualNote{
		ApartmentID: apartmentID,
		Text:        text,
		UpdatedAt:   s.now(),
	}

	s.mu.Lock()
	if i := s.manualNotes.index(apartmentID); i >= 0 {
		s.manualNotes.items[i] = note
	} else {
		s.manualNotes.append(note)
	}
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, s.manualNotes.name, "set", snap)
	return note
}

func (s *Store) ManualNote(apartmentID string) (domain.ManualNote, bool) {
	return get(s, &s.manualNotes, apartmentID)
}
