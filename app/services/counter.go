package services

import (
	"fmt"
	"log"
)

// ArmCountStore is the storage surface the membership counter needs. The
// SQL implementation lives in app/database; tests use an in-memory fake.
type ArmCountStore interface {
	// ListClassArmIDs returns the ids of every class arm in the school.
	ListClassArmIDs(schoolID string) ([]string, error)
	// CountActiveStudents counts students with class_arm_id = armID and
	// is_active = true. A missing arm yields database.ErrNotFound.
	CountActiveStudents(armID string) (int, error)
	// SaveStudentCount persists the recomputed cached count.
	SaveStudentCount(armID string, count int) error
}

// RecomputeItem is the outcome of recomputing a single class arm.
type RecomputeItem struct {
	ClassArmID string `json:"class_arm_id"`
	Count      int    `json:"count,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// RecomputeReport is the structured result of a batch recompute. A failed
// arm never aborts or rolls back the others; the report carries both the
// per-item detail and the aggregate tally.
type RecomputeReport struct {
	Total      int             `json:"total"`
	Successful int             `json:"successful"`
	Failed     int             `json:"failed"`
	Items      []RecomputeItem `json:"items"`
}

// CounterService keeps cached class-arm student counts consistent with the
// live student rows. The cached count is never authoritative; this service
// is the recompute-on-demand path.
type CounterService struct {
	store ArmCountStore
}

func NewCounterService(store ArmCountStore) *CounterService {
	return &CounterService{store: store}
}

// RecomputeCount recounts the arm's active students from ground truth and
// persists the result, regardless of the previous cached value.
func (s *CounterService) RecomputeCount(armID string) (int, error) {
	count, err := s.store.CountActiveStudents(armID)
	if err != nil {
		return 0, err
	}
	if err := s.store.SaveStudentCount(armID, count); err != nil {
		return 0, fmt.Errorf("failed to save count for class arm %s: %w", armID, err)
	}
	return count, nil
}

// RecomputeAll recomputes every class arm of a school. Best effort: each
// arm is independent, one failure does not block the rest, and already
// persisted counts stay persisted.
func (s *CounterService) RecomputeAll(schoolID string) (*RecomputeReport, error) {
	armIDs, err := s.store.ListClassArmIDs(schoolID)
	if err != nil {
		return nil, err
	}

	report := &RecomputeReport{Total: len(armIDs), Items: make([]RecomputeItem, 0, len(armIDs))}
	for _, armID := range armIDs {
		count, err := s.RecomputeCount(armID)
		if err != nil {
			report.Failed++
			report.Items = append(report.Items, RecomputeItem{ClassArmID: armID, Error: err.Error()})
			log.Printf("recompute failed for class arm %s: %v", armID, err)
			continue
		}
		report.Successful++
		report.Items = append(report.Items, RecomputeItem{ClassArmID: armID, Count: count, Success: true})
	}
	return report, nil
}
