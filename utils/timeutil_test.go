package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(0); got != "00:00" {
		t.Errorf("FormatClock(0) = %q", got)
	}
	if got := FormatClock(570); got != "09:30" {
		t.Errorf("FormatClock(570) = %q", got)
	}
	if got := FormatClock(1439); got != "23:59" {
		t.Errorf("FormatClock(1439) = %q", got)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"disjoint", 540, 600, 660, 720, false},
		{"contained", 540, 720, 600, 660, true},
		{"partial", 540, 630, 600, 660, true},
		{"identical", 600, 660, 600, 660, true},
		{"touching end-to-start", 540, 600, 600, 660, false},
		{"touching start-to-end", 660, 720, 600, 660, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || int(d.Month()) != 3 || d.Day() != 2 {
		t.Errorf("ParseDate returned %v", d)
	}

	for _, bad := range []string{"2026-3-2", "02-03-2026", "2026-03-02T10:00", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestCombineDateClock(t *testing.T) {
	at, err := CombineDateClock("2026-03-02", 570)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.Hour() != 9 || at.Minute() != 30 {
		t.Errorf("CombineDateClock = %v, want 09:30 local", at)
	}
}
