package services

import "time"

// TimestampedRecord is any health record carrying an observation timestamp.
type TimestampedRecord interface {
	Timestamp() time.Time
}

// SelectSince returns the records whose timestamp is strictly after
// (now - window), preserving input order. The input slice is never mutated.
func SelectSince[T TimestampedRecord](records []T, now time.Time, token string) ([]T, error) {
	window, err := ParseRangeToken(token)
	if err != nil {
		return nil, err
	}

	cutoff := window.CutoffFrom(now)
	selected := make([]T, 0, len(records))
	for _, record := range records {
		if record.Timestamp().After(cutoff) {
			selected = append(selected, record)
		}
	}
	return selected, nil
}

// CountSince is the count-only variant of SelectSince, used for previews.
func CountSince[T TimestampedRecord](records []T, now time.Time, token string) (int, error) {
	window, err := ParseRangeToken(token)
	if err != nil {
		return 0, err
	}

	cutoff := window.CutoffFrom(now)
	count := 0
	for _, record := range records {
		if record.Timestamp().After(cutoff) {
			count++
		}
	}
	return count, nil
}
