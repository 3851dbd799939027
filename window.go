package spendings

import (
	"maps"
	"slices"
)

// Universe returns the sorted distinct periods observed across ledgers.
func Universe(ledgers ...*Ledger) []Key {
	seen := make(map[Key]bool)
	for _, l := range ledgers {
		for _, k := range l.Periods() {
			seen[k] = true
		}
	}
	keys := slices.Collect(maps.Keys(seen))
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// Window returns the trailing reporting window: the last size periods of
// the universe, not counting the most recent one, which is assumed to be
// still accumulating and would chart misleadingly low. With fewer than two
// observed periods nothing is closed yet and the window is empty.
func Window(universe []Key, size int) []Key {
	if size <= 0 || len(universe) < 2 {
		return nil
	}
	closed := universe[:len(universe)-1]
	if size < len(closed) {
		closed = closed[len(closed)-size:]
	}
	return closed
}
