package model

// StartSessionResponse is the payload for a newly opened interview.
type StartSessionResponse struct {
	SessionID     string        `json:"sessionId"`
	QuestionIndex int           `json:"questionIndex"`
	Question      string        `json:"question"`
	Choices       []AnswerLevel `json:"choices"`
}

// SubmitAnswerRequest is the body of an answer submission.
type SubmitAnswerRequest struct {
	Answer AnswerLevel `json:"answer"`
}

// NextResponse either carries the next question or, once done, the
// prediction with its confidence distribution.
type NextResponse struct {
	Done          bool                 `json:"done"`
	QuestionIndex *int                 `json:"questionIndex,omitempty"`
	Question      string               `json:"question,omitempty"`
	Choices       []AnswerLevel        `json:"choices,omitempty"`
	Prediction    string               `json:"prediction,omitempty"`
	Confidences   map[Category]float64 `json:"confidences,omitempty"`
}

// AreaStatsResponse reports each team's share of recent completed games.
type AreaStatsResponse struct {
	TotalGames int                  `json:"totalGames"`
	Shares     map[Category]float64 `json:"shares"`
}
