package hmm

import (
	"errors"
	"fmt"
)

// ErrNoObservations indicates no observation symbol could be extracted from
// the question text. It is a structured "no match" outcome, not a fault.
var ErrNoObservations = errors.New("no recognizable math patterns in question")

// NormalizationError indicates the posterior raw scores could not be turned
// into a distribution because their sum is zero or non-finite.
type NormalizationError struct {
	Sum float64
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("posterior normalization failed: raw score sum is %v", e.Sum)
}
