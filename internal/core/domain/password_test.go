package domain

import (
	"reflect"
	"testing"
)

func TestCheckPasswordStrength_Levels(t *testing.T) {
	cases := []struct {
		name     string
		password string
		level    StrengthLevel
	}{
		{"all four rules", "Abcdef1!", StrengthStrong},
		{"no symbol", "Abcdefg1", StrengthIntermediate},
		{"no digit", "Abcdefg!", StrengthIntermediate},
		{"short but otherwise complete", "Ab1!", StrengthIntermediate},
		{"long lowercase only", "abcdefghij", StrengthWeak},
		{"short single case", "abc1", StrengthWeak},
		{"empty", "", StrengthWeak},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckPasswordStrength(tc.password)
			if got.Level != tc.level {
				t.Fatalf("level for %q: got %s, want %s", tc.password, got.Level, tc.level)
			}
		})
	}
}

func TestCheckPasswordStrength_WeakNotes(t *testing.T) {
	got := CheckPasswordStrength("abc")

	if got.Level != StrengthWeak {
		t.Fatalf("expected Weak, got %s", got.Level)
	}
	want := []string{
		"must be at least 8 characters",
		"must include uppercase and lowercase letters",
		"must include numbers",
		"must include symbols or special characters",
	}
	if !reflect.DeepEqual(got.Notes, want) {
		t.Fatalf("notes mismatch:\n got: %v\nwant: %v", got.Notes, want)
	}
}

func TestCheckPasswordStrength_WeakNotesListOnlyUnmetRules(t *testing.T) {
	got := CheckPasswordStrength("abcdefgh")

	if got.Level != StrengthWeak {
		t.Fatalf("expected Weak, got %s", got.Level)
	}
	want := []string{
		"must include uppercase and lowercase letters",
		"must include numbers",
		"must include symbols or special characters",
	}
	if !reflect.DeepEqual(got.Notes, want) {
		t.Fatalf("notes mismatch:\n got: %v\nwant: %v", got.Notes, want)
	}
}

func TestCheckPasswordStrength_AdvisoryNotes(t *testing.T) {
	if got := CheckPasswordStrength("Abcdefg1"); !reflect.DeepEqual(got.Notes, []string{"adding more symbols is recommended"}) {
		t.Fatalf("intermediate notes: %v", got.Notes)
	}
	if got := CheckPasswordStrength("Abcdef1!"); !reflect.DeepEqual(got.Notes, []string{"strong password"}) {
		t.Fatalf("strong notes: %v", got.Notes)
	}
}
