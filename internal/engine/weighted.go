package engine

import "errors"

// ErrInvalidState is returned when a weighted draw has no probability
// mass to draw from.
var ErrInvalidState = errors.New("weighted draw over zero total weight")

// PickIndex draws one index with probability proportional to its
// weight. Negative weights count as zero. rnd must return a value in
// [0, 1).
func PickIndex(weights []float64, rnd func() float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrInvalidState
	}

	target := rnd() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return i, nil
		}
	}

	// Float round-off can leave a sliver of target mass; settle on the
	// last drawable index.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, ErrInvalidState
}
