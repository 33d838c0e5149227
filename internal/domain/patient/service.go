package patient

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Service exposes the dashboard's read-only query operations over a
// Repository. All operations are pure functions of immutable data and safe
// for concurrent use.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetPatient returns a single record by id, or ErrNotFound.
func (s *Service) GetPatient(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPatients returns the full record set in store order.
func (s *Service) ListPatients(ctx context.Context) []*Record {
	return s.repo.GetAll(ctx)
}

// SearchPatients filters records by free-text query. An empty or
// all-whitespace query returns the full record set: the search box doubles
// as the patient list, so "no filter" means "everything", not "nothing".
//
// A record matches when the lower-cased query is a substring of the first
// name, the last name, or "first last" — or when the raw query is a
// case-sensitive substring of the CPR number. The filter is stable: results
// keep store order.
func (s *Service) SearchPatients(ctx context.Context, query string) []*Record {
	all := s.repo.GetAll(ctx)
	if strings.TrimSpace(query) == "" {
		return all
	}

	lower := strings.ToLower(query)
	var matched []*Record
	for _, rec := range all {
		if strings.Contains(strings.ToLower(rec.FirstName), lower) ||
			strings.Contains(strings.ToLower(rec.LastName), lower) ||
			strings.Contains(rec.CPRNumber, query) ||
			strings.Contains(strings.ToLower(rec.FullName()), lower) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// GetScheduledPatients returns the records whose procedure falls on the same
// calendar day as date, sorted ascending by procedure time. Time-of-day and
// zone offset on either side are ignored. The sort is stable, so two
// procedures colliding on the same slot are both returned in store order —
// collapsing collisions to one patient per slot is a rendering decision,
// not a query contract.
func (s *Service) GetScheduledPatients(ctx context.Context, date time.Time) []*Record {
	y, m, d := date.Date()

	var scheduled []*Record
	for _, rec := range s.repo.GetAll(ctx) {
		ry, rm, rd := rec.ProcedureDate.Date()
		if ry == y && rm == m && rd == d {
			scheduled = append(scheduled, rec)
		}
	}

	// Zero-padded 24h strings order correctly under plain string comparison.
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ProcedureTime < scheduled[j].ProcedureTime
	})
	return scheduled
}
