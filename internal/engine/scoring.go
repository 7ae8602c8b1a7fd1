package engine

import "teamsort/internal/model"

// ApplyAnswer folds one Likert answer into the session's running
// scores. level is the signed answer value in -2..2.
func ApplyAnswer(s *model.Session, q model.Question, level int) {
	for _, c := range model.Categories {
		s.Scores[c] += q.Weight(c) * float64(level)
	}
	if level > 0 {
		s.PositiveAnswerCount++
	}
	s.AskedCount++
}

// RecordQuestion marks the question at catalog index idx as the one now
// awaiting an answer and updates the per-area ask counters.
func RecordQuestion(s *model.Session, idx int, q model.Question) {
	s.AskedQuestions = append(s.AskedQuestions, idx)
	s.AreaCounts[q.Primary]++
	s.CurrentQuestionIndex = idx
}
