package spendings

import (
	"slices"
	"testing"
	"time"
)

// months builds the sorted monthly universe "2023-01" .. "2023-<n>".
func months(t *testing.T, n int) []Key {
	t.Helper()
	if n > 12 {
		t.Fatalf("months() supports one year, got %d", n)
	}
	var keys []Key
	for m := 1; m <= n; m++ {
		keys = append(keys, NewDate(2023, time.Month(m), 15).Period(Monthly))
	}
	return keys
}

func TestWindow(t *testing.T) {
	testCases := []struct {
		name     string
		universe int // number of observed months
		size     int
		want     []string
	}{
		{"empty universe", 0, 12, nil},
		{"single period is still open", 1, 12, nil},
		{"two periods close one", 2, 12, []string{"2023-01"}},
		{"size larger than closed", 4, 12, []string{"2023-01", "2023-02", "2023-03"}},
		{"size trims the oldest", 6, 3, []string{"2023-03", "2023-04", "2023-05"}},
		{"size one keeps the last closed", 6, 1, []string{"2023-05"}},
		{"zero size", 6, 0, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			window := Window(months(t, tc.universe), tc.size)
			labels := make([]string, 0, len(window))
			for _, k := range window {
				labels = append(labels, k.String())
			}
			if !slices.Equal(labels, tc.want) {
				t.Errorf("Window(%d months, %d) = %v, want %v", tc.universe, tc.size, labels, tc.want)
			}
		})
	}
}

// TestWindowNeverIncludesNewest checks the windowing invariants for every
// universe and size combination: the newest period is never reported on,
// and the window length is min(size, len(universe)-1).
func TestWindowNeverIncludesNewest(t *testing.T) {
	for n := 0; n <= 12; n++ {
		universe := months(t, n)
		for size := 0; size <= 14; size++ {
			window := Window(universe, size)

			wantLen := 0
			if size > 0 && n > 1 {
				wantLen = min(size, n-1)
			}
			if len(window) != wantLen {
				t.Errorf("len(Window(%d months, %d)) = %d, want %d", n, size, len(window), wantLen)
			}
			if n == 0 {
				continue
			}
			newest := universe[len(universe)-1]
			if slices.Contains(window, newest) {
				t.Errorf("Window(%d months, %d) contains the newest period %s", n, size, newest)
			}
		}
	}
}

func TestUniverse(t *testing.T) {
	groceries := Build(Monthly, []Transaction{
		outcome("15.01.2023", "Еда", 100),
		outcome("15.03.2023", "Еда", 100),
	})
	travel := Build(Monthly, []Transaction{
		outcome("20.02.2023", "Дорога", 50),
		outcome("20.03.2023", "Дорога", 50),
	})

	universe := Universe(groceries, travel)
	labels := make([]string, 0, len(universe))
	for _, k := range universe {
		labels = append(labels, k.String())
	}
	want := []string{"2023-01", "2023-02", "2023-03"}
	if !slices.Equal(labels, want) {
		t.Errorf("Universe() = %v, want %v", labels, want)
	}
}
