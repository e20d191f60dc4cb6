package handanalyzer

import (
	"fmt"
	"strings"
)

// Strength is the comparable value of an evaluated hand: [category, tiebreak...]
// Tiebreak ranks are ordered by descending significance
type Strength []int

// Hand returns the category of the strength
func (s Strength) Hand() Hand {
	if len(s) == 0 {
		return 0
	}

	return Hand(s[0])
}

// Compare returns 1 if a is stronger, -1 if b is stronger, and 0 on an exact tie
// The first differing element decides. If one vector is a prefix of the other, the longer wins.
func Compare(a, b Strength) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}

// Beats returns true if s is strictly stronger than other
func (s Strength) Beats(other Strength) bool {
	return Compare(s, other) > 0
}

// Equal returns true if the strengths tie exactly
func (s Strength) Equal(other Strength) bool {
	return Compare(s, other) == 0
}

func (s Strength) String() string {
	if len(s) == 0 {
		return ""
	}

	ranks := make([]string, len(s)-1)
	for i, r := range s[1:] {
		ranks[i] = rankName(r)
	}

	return fmt.Sprintf("%s (%s)", s.Hand(), strings.Join(ranks, ","))
}

func rankName(rank int) string {
	switch rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	}

	return fmt.Sprintf("%d", rank)
}
