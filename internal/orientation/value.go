package orientation

import (
	"encoding/json"
	"fmt"
)

// Value is the JSON-encodable answer payload for one question. Its shape
// depends on the question type: an option label for single-choice, an
// integer for rating-scale, an ordered list of option labels for ranking.
type Value any

// RatingMin and RatingMax bound the rating scale.
const (
	RatingMin = 1
	RatingMax = 5
)

// Choice builds a single-choice value.
func Choice(option string) Value { return option }

// Rating builds a rating-scale value.
func Rating(n int) Value { return n }

// Ranking builds a ranking value, most preferred first.
func Ranking(order []string) Value { return order }

// ValidateValue checks that v has the right shape for q's type. The shape
// check runs against the compiled JSON schema for the type; membership and
// permutation constraints are checked here since they depend on the
// question's own option list.
func ValidateValue(q Question, v Value) error {
	if v == nil {
		return fmt.Errorf("question %d: empty answer", q.ID)
	}

	// Normalize through JSON so the schema validator sees the same value
	// the wire would carry.
	parsed, err := normalize(v)
	if err != nil {
		return fmt.Errorf("question %d: %w", q.ID, err)
	}

	schema, err := schemaFor(q.Type)
	if err != nil {
		return fmt.Errorf("question %d: %w", q.ID, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("question %d: wrong value shape for %s: %w", q.ID, q.Type, err)
	}

	switch q.Type {
	case TypeSingleChoice:
		label := parsed.(string)
		if !containsOption(q.Options, label) {
			return fmt.Errorf("question %d: %q is not one of the listed options", q.ID, label)
		}
	case TypeRanking:
		order := parsed.([]any)
		if err := checkPermutation(q.Options, order); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
	}

	return nil
}

// normalize round-trips v through JSON to the generic representation the
// schema validator expects.
func normalize(v Value) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unencodable answer value: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unencodable answer value: %w", err)
	}
	return parsed, nil
}

func containsOption(options []string, label string) bool {
	for _, o := range options {
		if o == label {
			return true
		}
	}
	return false
}

// checkPermutation verifies that order contains each option exactly once.
func checkPermutation(options []string, order []any) error {
	if len(order) != len(options) {
		return fmt.Errorf("ranking must order all %d options, got %d", len(options), len(order))
	}
	seen := make(map[string]bool, len(options))
	for _, item := range order {
		label, ok := item.(string)
		if !ok {
			return fmt.Errorf("ranking entries must be option labels")
		}
		if !containsOption(options, label) {
			return fmt.Errorf("%q is not one of the listed options", label)
		}
		if seen[label] {
			return fmt.Errorf("%q ranked twice", label)
		}
		seen[label] = true
	}
	return nil
}
