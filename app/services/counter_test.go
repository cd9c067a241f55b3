package services

import (
	"errors"
	"testing"
)

// fakeArmStore is an in-memory ArmCountStore. Arms listed in failCount
// return a storage error from CountActiveStudents.
type fakeArmStore struct {
	arms      map[string][]string // schoolID -> arm ids
	active    map[string]int      // armID -> active student count
	saved     map[string]int      // armID -> persisted cached count
	failCount map[string]error
}

func newFakeArmStore() *fakeArmStore {
	return &fakeArmStore{
		arms:      make(map[string][]string),
		active:    make(map[string]int),
		saved:     make(map[string]int),
		failCount: make(map[string]error),
	}
}

func (s *fakeArmStore) ListClassArmIDs(schoolID string) ([]string, error) {
	return s.arms[schoolID], nil
}

func (s *fakeArmStore) CountActiveStudents(armID string) (int, error) {
	if err := s.failCount[armID]; err != nil {
		return 0, err
	}
	return s.active[armID], nil
}

func (s *fakeArmStore) SaveStudentCount(armID string, count int) error {
	s.saved[armID] = count
	return nil
}

func TestRecomputeCountIgnoresCapacityAndInactive(t *testing.T) {
	store := newFakeArmStore()
	// Arm with capacity 40: 35 active students, 5 inactive. Only the
	// active roster counts; capacity plays no part.
	store.active["arm-1"] = 35

	svc := NewCounterService(store)
	count, err := svc.RecomputeCount("arm-1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 35 {
		t.Errorf("count = %d, want 35", count)
	}
	if store.saved["arm-1"] != 35 {
		t.Errorf("persisted count = %d, want 35", store.saved["arm-1"])
	}
}

func TestRecomputeCountOverwritesStaleCache(t *testing.T) {
	store := newFakeArmStore()
	store.active["arm-1"] = 12
	store.saved["arm-1"] = 99 // drifted cache

	svc := NewCounterService(store)
	if _, err := svc.RecomputeCount("arm-1"); err != nil {
		t.Fatal(err)
	}
	if store.saved["arm-1"] != 12 {
		t.Errorf("persisted count = %d, want recomputed 12", store.saved["arm-1"])
	}
}

func TestRecomputeAllPartialFailure(t *testing.T) {
	store := newFakeArmStore()
	store.arms["sch-1"] = []string{"arm-1", "arm-2", "arm-3"}
	store.active["arm-1"] = 30
	store.active["arm-3"] = 25
	store.failCount["arm-2"] = errors.New("connection reset")

	svc := NewCounterService(store)
	report, err := svc.RecomputeAll("sch-1")
	if err != nil {
		t.Fatal(err)
	}

	if report.Total != 3 || report.Successful != 2 || report.Failed != 1 {
		t.Errorf("report = {total:%d successful:%d failed:%d}, want {total:3 successful:2 failed:1}",
			report.Total, report.Successful, report.Failed)
	}
	if len(report.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(report.Items))
	}

	// The failing arm must not block or roll back its siblings.
	if store.saved["arm-1"] != 30 {
		t.Errorf("arm-1 persisted = %d, want 30", store.saved["arm-1"])
	}
	if store.saved["arm-3"] != 25 {
		t.Errorf("arm-3 persisted = %d, want 25", store.saved["arm-3"])
	}
	if _, ok := store.saved["arm-2"]; ok {
		t.Error("arm-2 should not have a persisted count")
	}

	for _, item := range report.Items {
		switch item.ClassArmID {
		case "arm-2":
			if item.Success || item.Error == "" {
				t.Errorf("arm-2 item = %+v, want failure with error detail", item)
			}
		default:
			if !item.Success {
				t.Errorf("%s item = %+v, want success", item.ClassArmID, item)
			}
		}
	}
}

func TestRecomputeAllEmptySchool(t *testing.T) {
	svc := NewCounterService(newFakeArmStore())
	report, err := svc.RecomputeAll("sch-empty")
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 0 || report.Successful != 0 || report.Failed != 0 {
		t.Errorf("report = %+v, want all zeros", report)
	}
}
