package store

import (
	"context"
	"strings"

	"github.com/fastygo/furnish/domain"
)

// AddIssue stores a new issue. The product it names is not modified.
func (s *Store) AddIssue(ctx context.Context, issue domain.Issue) (domain.Issue, error) {
	issue.ApplyDefaults()
	if issue.ReportedOn.IsZero() {
		issue.ReportedOn = s.now()
	}
	return add(ctx, s, &s.issues, issue, func(i *domain.Issue, id string) { i.ID = id })
}

func (s *Store) UpdateIssue(ctx context.Context, id string, patch domain.IssuePatch) (domain.Issue, bool, error) {
	return update(ctx, s, &s.issues, id, patch)
}

func (s *Store) DeleteIssue(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.issues, id)
}

func (s *Store) GetIssue(id string) (domain.Issue, bool) {
	return get(s, &s.issues, id)
}

func (s *Store) ListIssues() []domain.Issue {
	return list(s, &s.issues)
}

func (s *Store) IssuesByApartment(apartmentID string) []domain.Issue {
	return filter(s, &s.issues, func(i domain.Issue) bool {
		return i.ApartmentID == apartmentID
	})
}

func (s *Store) IssuesByVendor(vendor string) []domain.Issue {
	return filter(s, &s.issues, func(i domain.Issue) bool {
		return strings.EqualFold(i.Vendor, vendor)
	})
}

func (s *Store) IssuesByProduct(productID string) []domain.Issue {
	return filter(s, &s.issues, func(i domain.Issue) bool {
		return i.ProductID == productID
	})
}

// AppendIssueCommunication adds a message to the issue's vendor conversation log.
func (s *Store) AppendIssueCommunication(ctx context.Context, id string, entry domain.CommunicationEntry) (domain.Issue, bool, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	s.mu.Lock()
	i := s.issues.index(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Issue{}, false, nil
	}
	if err := domain.Validate(entry); err != nil {
		s.mu.Unlock()
		return domain.Issue{}, true, err
	}
	issue := s.issues.items[i].Clone()
	issue.AICommunicationLog = append(issue.AICommunicationLog, entry)
	s.issues.items[i] = issue
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, s.issues.name, "communicate", snap)
	return issue.Clone(), true, nil
}
