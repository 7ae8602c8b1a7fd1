package model

import "time"

// VerdictUncertain is the distinguished non-answer verdict reported
// when the interview ends without a trustworthy top category.
const VerdictUncertain = "Belirsiz"

// Result is the outcome of a finished interview.
type Result struct {
	Prediction  string               `json:"prediction"`
	Uncertain   bool                 `json:"uncertain"`
	Confidences map[Category]float64 `json:"confidences"`
}

// GameResult is the persisted report for a completed interview. It
// feeds the global area statistics used to bias later sessions.
type GameResult struct {
	ID              string               `json:"id" bson:"_id,omitempty"`
	SessionID       string               `json:"sessionId" bson:"sessionId"`
	PredictedClass  string               `json:"predictedClass" bson:"predictedClass"`
	Confidences     map[Category]float64 `json:"confidences" bson:"confidences"`
	AskedQuestions  []int                `json:"askedQuestions" bson:"askedQuestions"`
	AreaCounts      map[Category]int     `json:"areaCounts" bson:"areaCounts"`
	PositiveAnswers int                  `json:"positiveAnswers" bson:"positiveAnswers"`
	TotalQuestions  int                  `json:"totalQuestions" bson:"totalQuestions"`
	IsUncertain     bool                 `json:"isUncertain" bson:"isUncertain"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
}
