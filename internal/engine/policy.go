package engine

import (
	"errors"
	"math"

	"teamsort/internal/model"
)

const (
	// MinQuestions answers are always collected before stopping.
	MinQuestions = 3
	// MaxQuestions is the hard cap on interview length.
	MaxQuestions = 8
	// ConfidenceThreshold is the top probability needed to stop early.
	ConfidenceThreshold = 0.75
	// UncertaintyThreshold is the floor below which the top category is
	// not trusted.
	UncertaintyThreshold = 0.3

	// Top two probabilities closer than this are treated as
	// statistically indistinguishable.
	minTopTwoGap = 0.05
)

// ErrSessionEnded is returned when a terminal session is finalized or
// answered again.
var ErrSessionEnded = errors.New("session already ended")

// Normalize converts raw scores to a probability distribution with a
// max-shifted softmax, so large positive scores cannot overflow. Equal
// scores produce a uniform distribution.
func Normalize(scores map[model.Category]float64) map[model.Category]float64 {
	mx := math.Inf(-1)
	for _, v := range scores {
		if v > mx {
			mx = v
		}
	}
	if math.IsInf(mx, -1) {
		mx = 0
	}

	probs := make(map[model.Category]float64, len(scores))
	sum := 0.0
	for c, v := range scores {
		e := math.Exp(v - mx)
		probs[c] = e
		sum += e
	}
	if sum == 0 {
		sum = 1
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}

// ShouldFinish decides whether the interview stops after asked answers.
func ShouldFinish(scores map[model.Category]float64, asked int) bool {
	if asked < MinQuestions {
		return false
	}
	top, _ := topTwo(Normalize(scores))
	if top >= ConfidenceThreshold {
		return true
	}
	return asked >= MaxQuestions
}

// IsUncertain reports whether the finished interview's top category is
// trustworthy enough to report. A result without a single agree-level
// answer is never trusted, whatever the scores say.
func IsUncertain(scores map[model.Category]float64, s *model.Session) bool {
	if s.PositiveAnswerCount == 0 {
		return true
	}
	top, second := topTwo(Normalize(scores))
	if top < UncertaintyThreshold {
		return true
	}
	return top-second < minTopTwoGap
}

// Finalize computes the rounded confidence distribution and the
// verdict, and moves the session to its terminal state. Finalizing the
// same session twice is an error.
func Finalize(s *model.Session) (*model.Result, error) {
	if s.Status == model.SessionEnded {
		return nil, ErrSessionEnded
	}

	probs := Normalize(s.Scores)
	rounded := make(map[model.Category]float64, len(probs))
	for c, p := range probs {
		rounded[c] = math.Round(p*10000) / 10000
	}

	result := &model.Result{Confidences: rounded}
	if IsUncertain(s.Scores, s) {
		result.Prediction = model.VerdictUncertain
		result.Uncertain = true
	} else {
		// Strict-greater scan over the fixed enumeration order, so a
		// tie resolves to the earliest category.
		best := model.Categories[0]
		for _, c := range model.Categories[1:] {
			if rounded[c] > rounded[best] {
				best = c
			}
		}
		result.Prediction = string(best)
	}

	s.Status = model.SessionEnded
	return result, nil
}

func topTwo(probs map[model.Category]float64) (top, second float64) {
	top, second = math.Inf(-1), math.Inf(-1)
	for _, p := range probs {
		if p > top {
			top, second = p, top
		} else if p > second {
			second = p
		}
	}
	return top, second
}
