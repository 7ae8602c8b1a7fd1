package model

import "errors"

// AnswerLevel is one of the five Likert responses to a statement.
type AnswerLevel string

const (
	AnswerStrongYes AnswerLevel = "kesinlikle_evet"
	AnswerYes       AnswerLevel = "evet"
	AnswerUnknown   AnswerLevel = "bilmiyorum"
	AnswerNo        AnswerLevel = "hayir"
	AnswerStrongNo  AnswerLevel = "kesinlikle_hayir"
)

// ErrInvalidAnswer is returned for an answer outside the five levels.
var ErrInvalidAnswer = errors.New("invalid answer")

var likertValues = map[AnswerLevel]int{
	AnswerStrongYes: 2,
	AnswerYes:       1,
	AnswerUnknown:   0,
	AnswerNo:        -1,
	AnswerStrongNo:  -2,
}

// AnswerChoices returns the five levels in display order, strongest
// agreement first.
func AnswerChoices() []AnswerLevel {
	return []AnswerLevel{AnswerStrongYes, AnswerYes, AnswerUnknown, AnswerNo, AnswerStrongNo}
}

// Value returns the signed score contribution of the level.
func (a AnswerLevel) Value() (int, error) {
	v, ok := likertValues[a]
	if !ok {
		return 0, ErrInvalidAnswer
	}
	return v, nil
}

// IsPositive reports whether the level is one of the two agree levels.
func (a AnswerLevel) IsPositive() bool {
	return a == AnswerYes || a == AnswerStrongYes
}
