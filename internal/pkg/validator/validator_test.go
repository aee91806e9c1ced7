package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"10:15", 615, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"9:5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		minutes, ok := IsValidTimeOfDay(c.input)
		if ok != c.ok || minutes != c.minutes {
			t.Errorf("IsValidTimeOfDay(%q) = (%d, %v), want (%d, %v)", c.input, minutes, ok, c.minutes, c.ok)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		input string
		want  time.Weekday
		ok    bool
	}{
		{"Sunday", time.Sunday, true},
		{"tuesday", time.Tuesday, true},
		{" Saturday ", time.Saturday, true},
		{"FRIDAY", time.Friday, true},
		{"Funday", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseWeekday(c.input)
		if ok != c.ok {
			t.Errorf("ParseWeekday(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"c56a4180-65aa-42ec-a945-5fd21dec0538",
		"C56A4180-65AA-42EC-A945-5FD21DEC0538",
	}
	invalid := []string{"", "not-a-uuid", "c56a4180-65aa-42ec-a945"}
	for _, s := range valid {
		if !IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+05:30"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "is required"},
		{Field: "end_date", Message: "must not be before start_date"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["start_date"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
