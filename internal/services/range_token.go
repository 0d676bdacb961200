package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRangeToken reports a lookback token that cannot be parsed.
// Malformed tokens fail hard instead of silently selecting nothing.
var ErrInvalidRangeToken = errors.New("invalid range token")

var rangeTokenPattern = regexp.MustCompile(`^(\d+)(days|weeks|months|years)$`)

// RangeWindow is a parsed lookback window such as "30days" or "1years".
type RangeWindow struct {
	days   int
	months int
	years  int
}

// ParseRangeToken parses tokens of the form "<N>days", "<N>weeks",
// "<N>months" or "<N>years" with N >= 1.
func ParseRangeToken(token string) (RangeWindow, error) {
	matches := rangeTokenPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(token)))
	if len(matches) != 3 {
		return RangeWindow{}, ErrInvalidRangeToken
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return RangeWindow{}, ErrInvalidRangeToken
	}

	switch matches[2] {
	case "days":
		return RangeWindow{days: amount}, nil
	case "weeks":
		return RangeWindow{days: amount * 7}, nil
	case "months":
		return RangeWindow{months: amount}, nil
	case "years":
		return RangeWindow{years: amount}, nil
	default:
		return RangeWindow{}, ErrInvalidRangeToken
	}
}

// CutoffFrom returns the exclusive lower bound of the window anchored at now:
// a record belongs to the window when its timestamp is strictly after the
// returned time.
func (window RangeWindow) CutoffFrom(now time.Time) time.Time {
	return now.AddDate(-window.years, -window.months, -window.days)
}
