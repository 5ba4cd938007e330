package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	src := source{}
	t.Setenv("BOOL_TEST", "")
	if got := src.boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := src.boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestSecondsEnvOrDefault(t *testing.T) {
	src := source{}
	cases := []struct {
		val  string
		want time.Duration
	}{
		{"", time.Minute},
		{"90", 90 * time.Second},
		{"5m", 5 * time.Minute},
		{"0", Uncached},
		{"0s", Uncached},
		{"-5", time.Minute},
		{"abc", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv("SECONDS_TEST", tc.val)
		if got := src.secondsEnvOrDefault("SECONDS_TEST", time.Minute); got != tc.want {
			t.Fatalf("secondsEnvOrDefault(%q) = %s, want %s", tc.val, got, tc.want)
		}
	}
}

func TestIntEnvOrDefaultRejectsNonPositive(t *testing.T) {
	src := source{}
	t.Setenv("INT_TEST", "-1")
	if got := src.intEnvOrDefault("INT_TEST", 4); got != 4 {
		t.Fatalf("expected default for negative value, got %d", got)
	}
	t.Setenv("INT_TEST", "12")
	if got := src.intEnvOrDefault("INT_TEST", 4); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}
