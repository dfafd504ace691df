package validator

import (
	"testing"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"jo", "alice_01", "a.b-c"}
	invalid := []string{"", "x", "has space", "waytoolongusername-exceeds-20"}
	for _, name := range valid {
		if !IsValidUsername(name) {
			t.Errorf("IsValidUsername(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidUsername(name) {
			t.Errorf("IsValidUsername(%q) = true, want false", name)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "01-02-2024", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	if _, ok := IsValidClockTime("09:30"); !ok {
		t.Error("IsValidClockTime(09:30) = false, want true")
	}
	for _, s := range []string{"25:00", "9:30:00", "half past"} {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}
