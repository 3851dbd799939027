package spendings

import (
	"cmp"
	"fmt"
	"strings"
)

// Grouping is the reporting granularity: every transaction date collapses
// into one period of that granularity.
type Grouping int

const (
	Monthly Grouping = iota
	Quarterly
	Yearly
)

func (g Grouping) String() string {
	switch g {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown grouping %d", g))
	}
}

// ParseGrouping parses a user supplied grouping name.
func ParseGrouping(g string) (Grouping, error) {
	switch strings.ToLower(g) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown grouping %s", g)
	}
}

// Key identifies one period of a given grouping, a calendar month, quarter
// or year. Keys are comparable, sort chronologically, and render to a label
// that sorts the same way lexicographically.
type Key struct {
	g    Grouping
	year int
	ord  int // month 1-12, quarter 1-4, 0 for yearly keys
}

// Period returns the period key the date falls into at the given granularity.
func (d Date) Period(g Grouping) Key {
	switch g {
	case Monthly:
		return Key{g: g, year: d.Year(), ord: int(d.Month())}
	case Quarterly:
		return Key{g: g, year: d.Year(), ord: (int(d.Month())-1)/3 + 1}
	case Yearly:
		return Key{g: g, year: d.Year()}
	default:
		panic(fmt.Sprintf("unknown grouping %d", g))
	}
}

// Grouping returns the granularity the key was derived at.
func (k Key) Grouping() Grouping { return k.g }

// Year returns the calendar year of the period.
func (k Key) Year() int { return k.year }

// String renders the period label: "2023-04", "2023-q2" or "2023".
func (k Key) String() string {
	switch k.g {
	case Monthly:
		return fmt.Sprintf("%04d-%02d", k.year, k.ord)
	case Quarterly:
		return fmt.Sprintf("%04d-q%d", k.year, k.ord)
	case Yearly:
		return fmt.Sprintf("%04d", k.year)
	default:
		panic(fmt.Sprintf("unknown grouping %d", k.g))
	}
}

// Compare orders two keys of the same grouping chronologically.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.year, o.year); c != 0 {
		return c
	}
	return cmp.Compare(k.ord, o.ord)
}

// Before reports whether period k is earlier than period o.
func (k Key) Before(o Key) bool { return k.Compare(o) < 0 }
