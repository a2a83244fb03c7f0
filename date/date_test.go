package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-10", want: New(2025, time.January, 10)},
		{in: "2025-1-2", want: New(2025, time.January, 2)},
		{in: "not-a-date", wantErr: true},
		{in: "2025-13-40", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParse("2025-06-30")
	b := MustParse("2025-07-01")

	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("%v should be after %v", b, a)
	}
	if a.After(a) || a.Before(a) {
		t.Errorf("%v should not be before or after itself", a)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today should not report IsZero")
	}
}

func TestDate_Add(t *testing.T) {
	d := MustParse("2025-12-31")
	if got, want := d.Add(1), MustParse("2026-01-01"); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got, want := d.Add(-31), MustParse("2025-11-30"); got != want {
		t.Errorf("Add(-31) = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2025-03-05")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-05"` {
		t.Errorf("marshal = %s, want %q", b, "2025-03-05")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
