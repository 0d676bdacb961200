package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Lowercase base32-style alphabet without look-alike characters, used for
// report identifiers that end up in filenames and URLs.
const ReportIDAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

const reportIDLength = 12

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// NewReportID returns a fresh identifier for a stored report configuration.
func NewReportID() (string, error) {
	return RandomString(reportIDLength, ReportIDAlphabet)
}
