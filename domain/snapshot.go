package domain

import (
	"encoding/json"
	"time"
)

// SnapshotVersion is the layout written by this build. Blobs without a version
// predate versioning and are migrated on decode.
const SnapshotVersion = 1

// Snapshot is the serialisable state of every collection of the store.
type Snapshot struct {
	Version     int          `json:"version"`
	Revision    uint64       `json:"revision"`
	SavedAt     time.Time    `json:"saved_at"`
	Clients     []Client     `json:"clients"`
	Apartments  []Apartment  `json:"apartments"`
	Vendors     []Vendor     `json:"vendors"`
	Products    []Product    `json:"products"`
	Deliveries  []Delivery   `json:"deliveries"`
	Payments    []Payment    `json:"payments"`
	Issues      []Issue      `json:"issues"`
	Activities  []Activity   `json:"activities"`
	AINotes     []AINote     `json:"ai_notes"`
	ManualNotes []ManualNote `json:"manual_notes"`
}

// Encode serialises the snapshot, stamping the current version.
func (s Snapshot) Encode() ([]byte, error) {
	s.Version = SnapshotVersion
	return json.Marshal(s)
}

// DecodeSnapshot parses a persisted blob. Unversioned blobs are migrated in place;
// blobs written by a newer layout are rejected with ErrUnsupportedSnapshot.
func DecodeSnapshot(raw []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, WrapError(ErrCodeInvalid, "malformed snapshot", err)
	}

	switch snap.Version {
	case 0:
		migrateV0(&snap)
	case SnapshotVersion:
	default:
		return Snapshot{}, ErrUnsupportedSnapshot
	}
	return snap, nil
}

// migrateV0 upgrades blobs saved before snapshots were versioned: derived payment
// fields were only kept in sync by one code path back then.
func migrateV0(snap *Snapshot) {
	for i := range snap.Payments {
		if len(snap.Payments[i].PaymentHistory) > 0 {
			snap.Payments[i].Reconcile()
		}
	}
	snap.Version = SnapshotVersion
}

// Counts reports the size of every collection keyed by its JSON name.
func (s Snapshot) Counts() map[string]int {
	return map[string]int{
		"clients":      len(s.Clients),
		"apartments":   len(s.Apartments),
		"vendors":      len(s.Vendors),
		"products":     len(s.Products),
		"deliveries":   len(s.Deliveries),
		"payments":     len(s.Payments),
		"issues":       len(s.Issues),
		"activities":   len(s.Activities),
		"ai_notes":     len(s.AINotes),
		"manual_notes": len(s.ManualNotes),
	}
}
