package models

import (
	"fmt"
	"strings"
)

// Decision is the polarity of a swipe, independent of the label vocabulary a
// client uses.
type Decision string

const (
	DecisionPositive Decision = "positive"
	DecisionNegative Decision = "negative"
)

// decisionLabels maps every accepted wire label to its polarity. Older clients
// send accept/reject, the card UI sends left/right/top.
var decisionLabels = map[string]Decision{
	"accept":   DecisionPositive,
	"like":     DecisionPositive,
	"right":    DecisionPositive,
	"top":      DecisionPositive,
	"positive": DecisionPositive,

	"reject":   DecisionNegative,
	"dislike":  DecisionNegative,
	"left":     DecisionNegative,
	"negative": DecisionNegative,
}

// ParseDecision resolves a client label. Matching is case-insensitive.
func ParseDecision(label string) (Decision, error) {
	d, ok := decisionLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", fmt.Errorf("%w: unrecognized decision %q", ErrInvalidInput, label)
	}
	return d, nil
}

// IsPositive reports whether the decision should produce a match.
func (d Decision) IsPositive() bool {
	return d == DecisionPositive
}
