package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClassArmSerializesCachedCount(t *testing.T) {
	arm := ClassArm{
		ID:                 "arm-1",
		SchoolID:           "sch-1",
		Name:               "JSS 1A",
		Capacity:           40,
		CachedStudentCount: 35,
	}

	out, err := json.Marshal(arm)
	if err != nil {
		t.Fatal(err)
	}
	// Dashboards read the denormalized count under this key; the roster
	// relation must not be inlined when unloaded.
	if !strings.Contains(string(out), `"cached_student_count":35`) {
		t.Errorf("cached_student_count missing from %s", out)
	}
	if strings.Contains(string(out), `"students"`) {
		t.Errorf("empty roster should be omitted, got %s", out)
	}
}
