package engine

import (
	"testing"

	"teamsort/internal/model"
)

func TestApplyAnswer_AccumulatesWeightedScores(t *testing.T) {
	s := model.NewSession("s1", nil)
	q := model.Question{
		Weights: map[model.Category]float64{
			model.CategoryMedia:   1.5,
			model.CategoryNetwork: 0.5,
		},
		Primary: model.CategoryMedia,
	}

	ApplyAnswer(s, q, 2)
	ApplyAnswer(s, q, -1)

	if got := s.Scores[model.CategoryMedia]; got != 1.5 {
		t.Errorf("media score = %v, want 1.5", got)
	}
	if got := s.Scores[model.CategoryNetwork]; got != 0.5 {
		t.Errorf("network score = %v, want 0.5", got)
	}
	if got := s.Scores[model.CategoryProject]; got != 0 {
		t.Errorf("unweighted category moved: %v", got)
	}
	if s.AskedCount != 2 {
		t.Errorf("askedCount = %d, want 2", s.AskedCount)
	}
}

func TestApplyAnswer_CountsPositiveAnswers(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{2, 1},
		{1, 1},
		{0, 0},
		{-1, 0},
		{-2, 0},
	}
	for _, tc := range cases {
		s := model.NewSession("s1", nil)
		ApplyAnswer(s, model.Question{Primary: model.CategoryMedia}, tc.level)
		if s.PositiveAnswerCount != tc.want {
			t.Errorf("level %d: positiveAnswerCount = %d, want %d", tc.level, s.PositiveAnswerCount, tc.want)
		}
	}
}

func TestRecordQuestion(t *testing.T) {
	s := model.NewSession("s1", nil)
	q := model.Question{Primary: model.CategoryNetwork}

	RecordQuestion(s, 7, q)

	if len(s.AskedQuestions) != 1 || s.AskedQuestions[0] != 7 {
		t.Errorf("askedQuestions = %v, want [7]", s.AskedQuestions)
	}
	if s.AreaCounts[model.CategoryNetwork] != 1 {
		t.Errorf("areaCounts[network] = %d, want 1", s.AreaCounts[model.CategoryNetwork])
	}
	if s.CurrentQuestionIndex != 7 {
		t.Errorf("currentQuestionIndex = %d, want 7", s.CurrentQuestionIndex)
	}
}
