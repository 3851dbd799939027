package cmd

import (
	"testing"
	"time"

	"github.com/etnz/spendings"
)

func TestSpan(t *testing.T) {
	k := func(m time.Month) spendings.Key {
		return spendings.NewDate(2023, m, 1).Period(spendings.Monthly)
	}
	testCases := []struct {
		name string
		keys []spendings.Key
		want string
	}{
		{"no periods", nil, "nothing"},
		{"single period", []spendings.Key{k(1)}, "2023-01"},
		{"range", []spendings.Key{k(1), k(2), k(3)}, "2023-01 to 2023-03 (3 periods)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := span(tc.keys); got != tc.want {
				t.Errorf("span() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadOptions(t *testing.T) {
	opts, err := readOptions("quarter", 6)
	if err != nil {
		t.Fatalf("readOptions() error: %v", err)
	}
	if opts.Grouping != spendings.Quarterly {
		t.Errorf("Grouping = %v, want Quarterly", opts.Grouping)
	}
	if opts.Window != 6 {
		t.Errorf("Window = %d, want 6", opts.Window)
	}

	if _, err := readOptions("fortnight", 12); err == nil {
		t.Error("readOptions(fortnight) = nil error, want one")
	}
}
