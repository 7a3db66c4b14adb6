package domain

import (
	"math"
	"strconv"
	"strings"
)

// Score is an optional priority score.
// An invalid Score ranks below every valid one and renders as "".
type Score struct {
	Value float64
	Valid bool
}

// NewScore returns a valid score.
func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// ParseScore coerces a text cell to a Score.
// Surrounding whitespace is ignored; NaN, infinities and unparseable
// text yield an invalid Score.
func ParseScore(s string) Score {
	s = strings.TrimSpace(s)
	if s == "" {
		return Score{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Score{}
	}
	return NewScore(v)
}

// Format renders the score with three decimals, or "" when invalid.
func (s Score) Format() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', 3, 64)
}

// Compare orders scores descending with invalid scores last.
// It returns a negative number when s sorts before o.
func (s Score) Compare(o Score) int {
	switch {
	case s.Valid && !o.Valid:
		return -1
	case !s.Valid && o.Valid:
		return 1
	case !s.Valid && !o.Valid:
		return 0
	case s.Value > o.Value:
		return -1
	case s.Value < o.Value:
		return 1
	default:
		return 0
	}
}

// MaxScore returns the largest valid score, or an invalid Score if none are valid.
func MaxScore(scores ...Score) Score {
	best := Score{}
	for _, s := range scores {
		if !s.Valid {
			continue
		}
		if !best.Valid || s.Value > best.Value {
			best = s
		}
	}
	return best
}

// Rank is an optional non-negative integer rank.
type Rank struct {
	Value int
	Valid bool
}

// ParseRank parses a rank made only of ASCII digits.
// Signs, decimals, whitespace and empty strings yield an invalid Rank.
func ParseRank(s string) Rank {
	if s == "" {
		return Rank{}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Rank{}
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Rank{}
	}
	return Rank{Value: v, Valid: true}
}

// Compare orders ranks ascending with invalid ranks last.
func (r Rank) Compare(o Rank) int {
	switch {
	case r.Valid && !o.Valid:
		return -1
	case !r.Valid && o.Valid:
		return 1
	case !r.Valid && !o.Valid:
		return 0
	case r.Value < o.Value:
		return -1
	case r.Value > o.Value:
		return 1
	default:
		return 0
	}
}
