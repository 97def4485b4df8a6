package ui

import (
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{42 * time.Second, "42s ago"},
		{3 * time.Minute, "3m ago"},
		{5 * time.Hour, "5h ago"},
	}
	for _, tc := range cases {
		if got := humanizeDuration(tc.in); got != tc.want {
			t.Fatalf("humanizeDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"Victoria Sponge", 20, "Victoria Sponge"},
		{"Victoria Sponge", 8, "Victori…"},
		{"  padded  ", 10, "padded"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"Crème brûlée", 6, "Crème…"},
		{"蛋糕蛋糕", 5, "蛋糕…"},
		{"蛋糕蛋糕", 8, "蛋糕蛋糕"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "cake", "cakes"); got != "1 cake" {
		t.Fatalf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "cake", "cakes"); got != "0 cakes" {
		t.Fatalf("pluralize(0) = %q", got)
	}
}
