// Package store holds the furnishing entity collections in memory, serves
// relational lookups over them and hands every change to a snapshot sink.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/pkg/metrics"
	"github.com/fastygo/furnish/repository"
	"github.com/fastygo/furnish/usecase"
)

// Origin tells where the state of a freshly opened store came from.
type Origin string

const (
	OriginEmpty     Origin = "empty"
	OriginSeeded    Origin = "seeded"
	OriginPersisted Origin = "persisted"
)

// Options wires the store to its collaborators. Every field is optional.
type Options struct {
	Repository repository.SnapshotRepository
	Sink       usecase.SnapshotSink
	Logger     *zap.Logger
	Metrics    *metrics.StoreMetrics
	Clock      func() time.Time
}

// Store is the process-wide entity store. All methods are safe for concurrent use;
// each mutation and its derived-field updates happen inside one critical section.
type Store struct {
	mu sync.RWMutex

	clients     collection[domain.Client]
	apartments  collection[domain.Apartment]
	vendors     collection[domain.Vendor]
	products    collection[domain.Product]
	deliveries  collection[domain.Delivery]
	payments    collection[domain.Payment]
	issues      collection[domain.Issue]
	activities  collection[domain.Activity]
	aiNotes     collection[domain.AINote]
	manualNotes collection[domain.ManualNote]

	ids      idGenerator
	revision uint64
	origin   Origin

	sink    usecase.SnapshotSink
	logger  *zap.Logger
	metrics *metrics.StoreMetrics
	clock   func() time.Time
}

// New returns an empty store that has not loaded or seeded anything.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &Store{
		clients: newCollection("clients", prefixClient,
			func(c domain.Client) string { return c.ID }, domain.Client.Clone),
		apartments: newCollection("apartments", prefixApartment,
			func(a domain.Apartment) string { return a.ID }, domain.Apartment.Clone),
		vendors: newCollection("vendors", prefixVendor,
			func(v domain.Vendor) string { return v.ID }, domain.Vendor.Clone),
		products: newCollection("products", prefixProduct,
			func(p domain.Product) string { return p.ID }, domain.Product.Clone),
		deliveries: newCollection("deliveries", prefixDelivery,
			func(d domain.Delivery) string { return d.ID }, domain.Delivery.Clone),
		payments: newCollection("payments", prefixPayment,
			func(p domain.Payment) string { return p.ID }, domain.Payment.Clone),
		issues: newCollection("issues", prefixIssue,
			func(i domain.Issue) string { return i.ID }, domain.Issue.Clone),
		activities: newCollection("activities", prefixActivity,
			func(a domain.Activity) string { return a.ID }, domain.Activity.Clone),
		aiNotes: newCollection("ai_notes", prefixAINote,
			func(n domain.AINote) string { return n.ID }, domain.AINote.Clone),
		manualNotes: newCollection("manual_notes", "",
			func(n domain.ManualNote) string { return n.ApartmentID },
			func(n domain.ManualNote) domain.ManualNote { return n }),
		ids:     idGenerator{now: opts.Clock},
		origin:  OriginEmpty,
		sink:    opts.Sink,
		logger:  opts.Logger.Named("store"),
		metrics: opts.Metrics,
		clock:   opts.Clock,
	}
}

// Open builds a store and restores it from the repository. When nothing was ever
// persisted, or the persisted blob cannot be read or decoded, the fixtures are seeded
// instead. A persisted blob with empty collections is restored as is.
func Open(ctx context.Context, opts Options) *Store {
	s := New(opts)
	if opts.Repository == nil {
		s.Seed()
		return s
	}

	raw, err := opts.Repository.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.logger.Info("no persisted snapshot, seeding fixtures")
		s.Seed()
		return s
	case err != nil:
		s.logger.Warn("snapshot load failed, seeding fixtures", zap.Error(err))
		s.Seed()
		return s
	}

	snap, err := domain.DecodeSnapshot(raw)
	if err != nil {
		s.logger.Warn("persisted snapshot unusable, seeding fixtures", zap.Error(err))
		s.Seed()
		return s
	}
	s.Restore(snap)
	s.logger.Info("snapshot restored",
		zap.Uint64("revision", snap.Revision),
		zap.Any("counts", snap.Counts()))
	return s
}

// Restore replaces the whole state with snap without notifying the sink.
func (s *Store) Restore(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients.replaceAll(snap.Clients)
	s.apartments.replaceAll(snap.Apartments)
	s.vendors.replaceAll(snap.Vendors)
	s.products.replaceAll(snap.Products)
	s.deliveries.replaceAll(snap.Deliveries)
	s.payments.replaceAll(snap.Payments)
	s.issues.replaceAll(snap.Issues)
	s.activities.replaceAll(snap.Activities)
	s.aiNotes.replaceAll(snap.AINotes)
	s.manualNotes.replaceAll(snap.ManualNotes)

	s.revision = snap.Revision
	s.origin = OriginPersisted
	s.observeIDsLocked()
	s.metrics.SetRecords(s.snapshotLocked().Counts())
}

// Seed replaces the whole state with the built-in fixtures without notifying the sink.
func (s *Store) Seed() {
	s.Restore(fixtures())
	s.mu.Lock()
	s.origin = OriginSeeded
	s.mu.Unlock()
}

// Origin reports whether the state was restored, seeded or started empty.
func (s *Store) Origin() Origin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origin
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Stats reports the size of every collection.
func (s *Store) Stats() map[string]int {
	return s.Snapshot().Counts()
}

func (s *Store) observeIDsLocked() {
	for _, c := range s.clients.items {
		s.ids.observe(c.ID)
	}
	for _, a := range s.apartments.items {
		s.ids.observe(a.ID)
	}
	for _, v := range s.vendors.items {
		s.ids.observe(v.ID)
	}
	for _, p := range s.products.items {
		s.ids.observe(p.ID)
	}
	for _, d := range s.deliveries.items {
		s.ids.observe(d.ID)
	}
	for _, p := range s.payments.items {
		s.ids.observe(p.ID)
	}
	for _, i := range s.issues.items {
		s.ids.observe(i.ID)
	}
	for _, a := range s.activities.items {
		s.ids.observe(a.ID)
	}
	for _, n := range s.aiNotes.items {
		s.ids.observe(n.ID)
	}
}

func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Version:     domain.SnapshotVersion,
		Revision:    s.revision,
		Clients:     s.clients.all(),
		Apartments:  s.apartments.all(),
		Vendors:     s.vendors.all(),
		Products:    s.products.all(),
		Deliveries:  s.deliveries.all(),
		Payments:    s.payments.all(),
		Issues:      s.issues.all(),
		Activities:  s.activities.all(),
		AINotes:     s.aiNotes.all(),
		ManualNotes: s.manualNotes.all(),
	}
}

// checkpointLocked bumps the revision and captures the state to persist.
func (s *Store) checkpointLocked() domain.Snapshot {
	s.revision++
	snap := s.snapshotLocked()
	snap.SavedAt = s.clock()
	return snap
}

// publish runs after the lock is released; persistence is not awaited.
func (s *Store) publish(ctx context.Context, collection, operation string, snap domain.Snapshot) {
	s.metrics.IncMutation(collection, operation)
	s.metrics.SetRecords(snap.Counts())
	if s.sink == nil {
		return
	}
	s.sink.Submit(ctx, snap)
}

func (s *Store) now() time.Time {
	return s.clock()
}

func add[T any](ctx context.Context, s *Store, c *collection[T], item T, assign func(*T, string)) (T, error) {
	if err := domain.Validate(item); err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	assign(&item, s.ids.next(c.prefix))
	c.append(c.clone(item))
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, c.name, "add", snap)
	return item, nil
}

// update shallow-merges patch into the record with the given id. A missing id is a
// no-op reported through the boolean; a merge that fails validation leaves the record untouched.
func update[T any, P interface{ Apply(*T) }](ctx context.Context, s *Store, c *collection[T], id string, patch P) (T, bool, error) {
	var zero T

	s.mu.Lock()
	i := c.index(id)
	if i < 0 {
		s.mu.Unlock()
		return zero, false, nil
	}
	merged := c.clone(c.items[i])
	patch.Apply(&merged)
	if err := domain.Validate(merged); err != nil {
		s.mu.Unlock()
		return zero, true, err
	}
	c.items[i] = merged
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, c.name, "update", snap)
	return c.clone(merged), true, nil
}

func remove[T any](ctx context.Context, s *Store, c *collection[T], id string) bool {
	s.mu.Lock()
	if !c.remove(id) {
		s.mu.Unlock()
		return false
	}
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, c.name, "delete", snap)
	return true
}

func get[T any](s *Store, c *collection[T], id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.get(id)
}

func list[T any](s *Store, c *collection[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.all()
}

func filter[T any](s *Store, c *collection[T], keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.filter(keep)
}
