package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNoValues is returned when a value list is empty.
	ErrNoValues = errors.New("no values")
	// ErrInvalidValue is returned for entries that are not integers, or lists
	// longer than MaxValues.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseValues parses a comma or space separated list of integers.
func ParseValues(list string) ([]int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, ErrNoValues
	}
	if len(fields) > MaxValues {
		return nil, fmt.Errorf("%w: %d values, at most %d", ErrInvalidValue, len(fields), MaxValues)
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, f)
		}
		values[i] = v
	}
	return values, nil
}

// FormatValues is the inverse of ParseValues.
func FormatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// RandomValues draws count values in [1, DefaultRandomMax].
func RandomValues(count int, rng *rand.Rand) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = 1 + rng.Intn(DefaultRandomMax)
	}
	return values
}

// NewRand returns a generator for seed, or a clock-seeded one for 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// InitialValues returns the values a run starts with.
func (s SortConfig) InitialValues(rng *rand.Rand) []int {
	if s.RandomCount > 0 {
		return RandomValues(s.RandomCount, rng)
	}
	return append([]int(nil), s.Values...)
}
