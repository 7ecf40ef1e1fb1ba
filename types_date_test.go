package stocks

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "canonical", input: "2025-01-10", want: NewDate(2025, time.January, 10)},
		{name: "lenient single digits", input: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "surrounding spaces", input: " 2025-01-10 ", want: NewDate(2025, time.January, 10)},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong order", input: "10-01-2025", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidInput", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2025, time.July, 1).String(); got != "2025-07-01" {
		t.Errorf("String() = %q, want %q", got, "2025-07-01")
	}
}

func TestDate_Ordering(t *testing.T) {
	a := day("2025-01-10")
	b := day("2025-02-01")

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a day compares before or after itself")
	}
}

func TestDate_Add(t *testing.T) {
	if got := day("2025-01-31").Add(1); got != day("2025-02-01") {
		t.Errorf("Add(1) = %s, want 2025-02-01", got)
	}
	if got := day("2025-03-01").Add(-1); got != day("2025-02-28") {
		t.Errorf("Add(-1) = %s, want 2025-02-28", got)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Errorf("IsZero() = false for the zero value")
	}
	if day("2025-01-10").IsZero() {
		t.Errorf("IsZero() = true for a real date")
	}
}
