package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomDateJSON(t *testing.T) {
	var cd CustomDate
	if err := json.Unmarshal([]byte(`"2024-09-01"`), &cd); err != nil {
		t.Fatal(err)
	}
	if cd.Year() != 2024 || cd.Month() != time.September || cd.Day() != 1 {
		t.Errorf("parsed %v, want 2024-09-01", cd.Time)
	}

	out, err := json.Marshal(cd)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2024-09-01"` {
		t.Errorf("marshal = %s, want \"2024-09-01\"", out)
	}

	if err := json.Unmarshal([]byte(`null`), &cd); err != nil {
		t.Errorf("null should parse to zero time: %v", err)
	}
	if !cd.IsZero() {
		t.Error("null should yield zero time")
	}

	if err := json.Unmarshal([]byte(`"01/09/2024"`), &cd); err == nil {
		t.Error("wrong format should fail")
	}
}

func TestSessionIsCurrentByDate(t *testing.T) {
	s := Session{
		StartDate: CustomDate{Time: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   CustomDate{Time: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)},
	}

	if !s.IsCurrentByDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("mid-session date should be current")
	}
	if s.IsCurrentByDate(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("date before session should not be current")
	}
	if s.IsCurrentByDate(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("date after session should not be current")
	}
}
